package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ist = time.FixedZone("IST", 5*3600+30*60)

func testGenerator() Generator {
	return Generator{
		MinLead:         3 * time.Hour,
		Horizon:         72 * time.Hour,
		WindowStartHour: 13,
		WindowEndHour:   23,
		Step:            30 * time.Minute,
		Location:        ist,
	}
}

func TestGenerate_FirstSlotClampedToWindow(t *testing.T) {
	// 00:40 + 3h lead = 03:40, rounded to 04:00, which is outside the
	// service window; the first offer must be 13:00 the same day.
	now := time.Date(2025, 9, 15, 0, 40, 0, 0, ist)

	got := testGenerator().Generate(now)
	require.NotEmpty(t, got)
	assert.True(t, got[0].Equal(time.Date(2025, 9, 15, 13, 0, 0, 0, ist)),
		"first slot = %v", got[0])
}

func TestGenerate_ExactBoundaryIsKept(t *testing.T) {
	tests := []struct {
		name  string
		now   time.Time
		first time.Time
	}{
		{
			name:  "lead lands exactly on the hour",
			now:   time.Date(2025, 9, 15, 10, 0, 0, 0, ist),
			first: time.Date(2025, 9, 15, 13, 0, 0, 0, ist),
		},
		{
			name:  "lead lands exactly on the half hour",
			now:   time.Date(2025, 9, 15, 10, 30, 0, 0, ist),
			first: time.Date(2025, 9, 15, 13, 30, 0, 0, ist),
		},
		{
			name:  "lead lands one minute past the half hour",
			now:   time.Date(2025, 9, 15, 10, 31, 0, 0, ist),
			first: time.Date(2025, 9, 15, 14, 0, 0, 0, ist),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := testGenerator().Generate(tt.now)
			require.NotEmpty(t, got)
			assert.True(t, got[0].Equal(tt.first), "first slot = %v, want %v", got[0], tt.first)
		})
	}
}

func TestGenerate_StrictlyIncreasingAndInWindow(t *testing.T) {
	g := testGenerator()
	nows := []time.Time{
		time.Date(2025, 9, 15, 0, 40, 0, 0, ist),
		time.Date(2025, 9, 15, 12, 17, 0, 0, ist),
		time.Date(2025, 9, 15, 22, 59, 0, 0, ist),
		time.Date(2025, 12, 31, 23, 45, 0, 0, ist),
	}

	for _, now := range nows {
		slots := g.Generate(now)
		require.NotEmpty(t, slots, "now=%v", now)
		latest := now.Add(g.Horizon)
		for i, s := range slots {
			assert.GreaterOrEqual(t, s.Hour(), 13, "slot %v out of window", s)
			assert.LessOrEqual(t, s.Hour(), 23, "slot %v out of window", s)
			assert.Zero(t, s.Second())
			assert.Zero(t, s.Minute()%30, "slot %v not half-hour aligned", s)
			assert.False(t, s.After(latest), "slot %v past horizon", s)
			if i > 0 {
				assert.True(t, slots[i-1].Before(s), "sequence not strictly increasing at %d", i)
			}
		}
	}
}

func TestGenerate_EmptyWhenLeadExceedsHorizon(t *testing.T) {
	g := testGenerator()
	g.MinLead = 80 * time.Hour

	got := g.Generate(time.Date(2025, 9, 15, 10, 0, 0, 0, ist))
	assert.Empty(t, got)
}

func TestGenerate_FullWindowCount(t *testing.T) {
	// From 00:40 the horizon covers three full service days; the window
	// [13,23] with 30-minute steps holds 22 slots per day.
	now := time.Date(2025, 9, 15, 0, 40, 0, 0, ist)

	got := testGenerator().Generate(now)
	assert.Len(t, got, 66)
}

// naiveGenerate walks every step without the midnight jump. The
// optimized walk must produce exactly the same sequence.
func naiveGenerate(g Generator, now time.Time) []time.Time {
	latest := now.Add(g.Horizon)
	cur := roundUp(now.Add(g.MinLead).In(g.Location), g.Step)
	var out []time.Time
	for !cur.After(latest) {
		if h := cur.Hour(); h >= g.WindowStartHour && h <= g.WindowEndHour {
			out = append(out, cur)
		}
		cur = cur.Add(g.Step)
	}
	return out
}

func TestGenerate_MidnightJumpMatchesNaiveWalk(t *testing.T) {
	g := testGenerator()
	nows := []time.Time{
		time.Date(2025, 9, 15, 0, 40, 0, 0, ist),
		time.Date(2025, 9, 15, 20, 10, 0, 0, ist),
		time.Date(2025, 9, 15, 23, 55, 0, 0, ist),
		time.Date(2026, 2, 28, 13, 0, 0, 0, ist),
	}

	for _, now := range nows {
		got := g.Generate(now)
		want := naiveGenerate(g, now)
		require.Equal(t, len(want), len(got), "now=%v", now)
		for i := range want {
			assert.True(t, got[i].Equal(want[i]), "now=%v slot[%d]=%v want %v", now, i, got[i], want[i])
		}
	}
}

func TestSlots_Restartable(t *testing.T) {
	g := testGenerator()
	now := time.Date(2025, 9, 15, 0, 40, 0, 0, ist)

	seq := g.Slots(now)
	var first, second []time.Time
	for s := range seq {
		first = append(first, s)
	}
	for s := range seq {
		second = append(second, s)
	}
	assert.Equal(t, first, second)
}

func TestContains(t *testing.T) {
	g := testGenerator()
	now := time.Date(2025, 9, 15, 10, 0, 0, 0, ist)

	assert.True(t, g.Contains(now, time.Date(2025, 9, 15, 13, 0, 0, 0, ist)))
	assert.True(t, g.Contains(now, time.Date(2025, 9, 16, 23, 30, 0, 0, ist)))
	assert.False(t, g.Contains(now, time.Date(2025, 9, 15, 13, 15, 0, 0, ist)), "unaligned slot")
	assert.False(t, g.Contains(now, time.Date(2025, 9, 15, 12, 0, 0, 0, ist)), "before lead time")
	assert.False(t, g.Contains(now, time.Date(2025, 9, 30, 13, 0, 0, 0, ist)), "past horizon")
}

func TestGroupByDay(t *testing.T) {
	now := time.Date(2025, 9, 15, 0, 40, 0, 0, ist)
	groups := GroupByDay(testGenerator().Generate(now))

	require.Len(t, groups, 3)
	assert.Equal(t, "15 Sep 2025", groups[0].Label)
	assert.Equal(t, "16 Sep 2025", groups[1].Label)
	assert.Equal(t, "17 Sep 2025", groups[2].Label)
	for _, g := range groups {
		assert.Len(t, g.Slots, 22)
	}
}

func TestGroupByDay_Empty(t *testing.T) {
	assert.Empty(t, GroupByDay(nil))
}
