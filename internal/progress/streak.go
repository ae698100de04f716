package progress

import (
	"sort"
	"time"

	"github.com/2beens/programtracker/internal/clock"
)

// StreakGraceDays is the largest gap, in calendar days, between two
// completions that still keeps a streak going (one rest day in between).
// The rule is applied to every gap, so completions on days 10, 9 and 7 make
// a streak of 3, not the 2 some older worked examples of this rule state.
const StreakGraceDays = 2

func sortedDesc(dates []time.Time) []time.Time {
	sorted := make([]time.Time, len(dates))
	copy(sorted, dates)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].After(sorted[j])
	})
	return sorted
}

func withinGrace(later, earlier time.Time) bool {
	return clock.CalendarDaysBetween(earlier, later) <= StreakGraceDays
}

// CurrentStreak walks completion dates from the most recent one backwards and
// counts them until the first gap larger than the grace window.
func CurrentStreak(dates []time.Time) int {
	if len(dates) == 0 {
		return 0
	}
	sorted := sortedDesc(dates)

	streak := 1
	for i := 0; i < len(sorted)-1; i++ {
		if !withinGrace(sorted[i], sorted[i+1]) {
			break
		}
		streak++
	}
	return streak
}

// LongestStreak is the longest run over the whole history, using the same
// grace window as CurrentStreak.
func LongestStreak(dates []time.Time) int {
	if len(dates) == 0 {
		return 0
	}
	sorted := sortedDesc(dates)

	longest, run := 1, 1
	for i := 0; i < len(sorted)-1; i++ {
		if withinGrace(sorted[i], sorted[i+1]) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}
