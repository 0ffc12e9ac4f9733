package resource

import "sort"

// StateTally counts records per state name. The fold guarantees that the
// counts sum to the number of records folded in.
type StateTally map[string]int

func TallyStates(records []ComputeRecord) StateTally {
	tally := make(StateTally, len(records))
	for _, record := range records {
		tally.Add(record.State)
	}
	return tally
}

func (t StateTally) Add(state string) {
	t[state]++
}

func (t StateTally) Total() int {
	var total int
	for _, count := range t {
		total += count
	}
	return total
}

// States returns the state names in sorted order for deterministic output.
func (t StateTally) States() []string {
	states := make([]string, 0, len(t))
	for state := range t {
		states = append(states, state)
	}
	sort.Strings(states)
	return states
}
