// Package slots produces the ordered sequence of delivery slots offered
// at checkout. A slot is a half-hour-aligned instant that falls inside
// the shop's daily service window, at least the minimum lead time away
// and no further out than the booking horizon.
package slots

import (
	"iter"
	"slices"
	"time"
)

// Generator holds the slot rules. The zero value is not useful; build
// one from config or use the field values directly in tests.
type Generator struct {
	MinLead         time.Duration
	Horizon         time.Duration
	WindowStartHour int // inclusive, hour of day in Location
	WindowEndHour   int // inclusive
	Step            time.Duration
	Location        *time.Location
}

// Slots returns a lazy, finite sequence of candidate delivery times.
// now is captured once per call; ranging over the sequence again
// replays exactly the same slots. The sequence is strictly increasing,
// duplicate-free and empty when MinLead exceeds Horizon or no candidate
// lands inside the service window.
func (g Generator) Slots(now time.Time) iter.Seq[time.Time] {
	loc := g.Location
	if loc == nil {
		loc = now.Location()
	}

	return func(yield func(time.Time) bool) {
		latest := now.Add(g.Horizon)
		cur := roundUp(now.Add(g.MinLead).In(loc), g.Step)

		for !cur.After(latest) {
			h := cur.Hour()
			if h >= g.WindowStartHour && h <= g.WindowEndHour {
				if !yield(cur) {
					return
				}
			}
			cur = cur.Add(g.Step)
			// After the window closes nothing is offered until the next
			// day's opening hour; jump there instead of stepping through
			// the night. Hours 0..WindowStartHour-1 are out of window so
			// no candidate is lost.
			if cur.Hour() == 0 && g.WindowStartHour > 0 {
				cur = time.Date(cur.Year(), cur.Month(), cur.Day(), g.WindowStartHour, 0, 0, 0, loc)
			}
		}
	}
}

// Generate collects the full slot sequence for now.
func (g Generator) Generate(now time.Time) []time.Time {
	return slices.Collect(g.Slots(now))
}

// Contains reports whether slot is one of the instants Slots(now)
// yields. Used to validate a client-chosen slot at checkout.
func (g Generator) Contains(now, slot time.Time) bool {
	for s := range g.Slots(now) {
		if s.Equal(slot) {
			return true
		}
		if s.After(slot) {
			return false
		}
	}
	return false
}

// roundUp advances t to the next multiple of step past the top of its
// hour. An instant already on a boundary is kept, not advanced.
func roundUp(t time.Time, step time.Duration) time.Time {
	t = t.Truncate(time.Minute)
	stepMin := int(step / time.Minute)
	rem := t.Minute() % stepMin
	if rem == 0 {
		return t
	}
	return t.Add(time.Duration(stepMin-rem) * time.Minute)
}
