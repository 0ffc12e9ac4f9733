package resource

type BreachEntry struct {
	Name             string `json:"name"`
	Kind             Kind   `json:"type"`
	AutoStopMinutes  int    `json:"auto_stop_minutes"`
	ThresholdMinutes int    `json:"threshold_minutes"`
	ExcessMinutes    int    `json:"excess_minutes"`
}

// FindBreaches flags warehouses whose auto-stop interval strictly exceeds
// the threshold. Records without an auto-stop interval are skipped, so
// every entry's excess is strictly positive.
func FindBreaches(warehouses []ComputeRecord, thresholdMinutes int) []BreachEntry {
	var breaches []BreachEntry
	for _, warehouse := range warehouses {
		if warehouse.AutoStopMinutes == nil {
			continue
		}
		if minutes := *warehouse.AutoStopMinutes; minutes > thresholdMinutes {
			breaches = append(breaches, BreachEntry{
				Name:             warehouse.Name,
				Kind:             warehouse.Kind,
				AutoStopMinutes:  minutes,
				ThresholdMinutes: thresholdMinutes,
				ExcessMinutes:    minutes - thresholdMinutes,
			})
		}
	}
	return breaches
}
