package report

import (
	"github.com/jedib0t/go-pretty/v6/table"

	"inventory-api-server/internal/api/common/resource"
)

// StateTable renders a two-column state/count table with a total footer.
// Rows are sorted by state name so repeated runs render identically.
func StateTable(title string, tally resource.StateTally) string {
	tw := table.Table{}
	tw.SetTitle(title)
	tw.AppendHeader(table.Row{"State", "Count"})

	for _, state := range tally.States() {
		tw.AppendRow(table.Row{state, tally[state]})
	}
	tw.AppendFooter(table.Row{"Total", tally.Total()})

	tw.SetStyle(table.StyleRounded)
	return tw.Render()
}

func BreachTable(entries []resource.BreachEntry) string {
	tw := table.Table{}
	tw.SetTitle("Auto-Stop Threshold Breaches")
	tw.AppendHeader(table.Row{"Name", "Type", "Auto-Stop (min)", "Threshold (min)", "Excess (min)"})

	for _, entry := range entries {
		tw.AppendRow(table.Row{
			entry.Name,
			entry.Kind,
			entry.AutoStopMinutes,
			entry.ThresholdMinutes,
			entry.ExcessMinutes,
		})
	}

	tw.SetStyle(table.StyleRounded)
	return tw.Render()
}
