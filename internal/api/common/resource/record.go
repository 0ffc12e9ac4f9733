package resource

import "strconv"

type Kind string

const (
	KindCluster   Kind = "Cluster"
	KindWarehouse Kind = "SQL Warehouse"
)

const (
	NotAvailable = "N/A"
	UnknownState = "Unknown"
)

// ComputeRecord is one normalized cluster or warehouse row. Defaults are
// applied once at construction; rendering code never falls back again.
type ComputeRecord struct {
	Kind  Kind   `json:"type"`
	Name  string `json:"name"`
	ID    string `json:"id"`
	State string `json:"state"`
	// cluster only
	SparkVersion string `json:"spark_version,omitempty"`
	// warehouse only
	ClusterSize     string `json:"cluster_size,omitempty"`
	WarehouseType   string `json:"warehouse_type,omitempty"`
	AutoStopMinutes *int   `json:"auto_stop_minutes,omitempty"`
}

func NewClusterRecord(name, id, state, sparkVersion string) ComputeRecord {
	return ComputeRecord{
		Kind:         KindCluster,
		Name:         orDefault(name, NotAvailable),
		ID:           orDefault(id, NotAvailable),
		State:        orDefault(state, UnknownState),
		SparkVersion: orDefault(sparkVersion, NotAvailable),
	}
}

// NewWarehouseRecord builds a warehouse row. autoStop is nil when the
// warehouse has no auto-stop interval; it then renders as "N/A" and is
// skipped by breach checks.
func NewWarehouseRecord(name, id, state, clusterSize, warehouseType string, autoStop *int) ComputeRecord {
	return ComputeRecord{
		Kind:            KindWarehouse,
		Name:            orDefault(name, NotAvailable),
		ID:              orDefault(id, NotAvailable),
		State:           orDefault(state, UnknownState),
		ClusterSize:     orDefault(clusterSize, NotAvailable),
		WarehouseType:   orDefault(warehouseType, NotAvailable),
		AutoStopMinutes: autoStop,
	}
}

func (r ComputeRecord) AutoStopDisplay() string {
	if r.AutoStopMinutes == nil {
		return NotAvailable
	}
	return strconv.Itoa(*r.AutoStopMinutes)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
