package slots

import "time"

// DayLabelLayout is how the storefront labels a slot's calendar day.
const DayLabelLayout = "2 Jan 2006"

// TimeLabelLayout is how a single slot is shown inside a day group.
const TimeLabelLayout = "3:04 PM"

// DayGroup is one calendar day's worth of slots, in generation order.
type DayGroup struct {
	Label string      `json:"date"`
	Slots []time.Time `json:"slots"`
}

// GroupByDay buckets an ordered slot sequence by calendar day,
// preserving order. Input must already be sorted, which Generate
// guarantees.
func GroupByDay(slots []time.Time) []DayGroup {
	var groups []DayGroup
	for _, s := range slots {
		label := s.Format(DayLabelLayout)
		if n := len(groups); n > 0 && groups[n-1].Label == label {
			groups[n-1].Slots = append(groups[n-1].Slots, s)
			continue
		}
		groups = append(groups, DayGroup{Label: label, Slots: []time.Time{s}})
	}
	return groups
}
