package engine

import "math"

// streakLookback caps the backward walk; a year of consecutive days is as
// far as any streak display goes.
const streakLookback = 365

// HabitStreak counts consecutive days ending at today on which habitID was
// completed. Today only joins the streak once it is completed — an
// unfinished today does not break a streak that ran through yesterday.
func HabitStreak(s *State, habitID string) int {
	return backwardStreak(s, func(d *DayRecord) bool {
		return d.has(habitID)
	})
}

// OverallStreak is the same walk with a day qualifying when at least 70% of
// the catalog (rounded up) was completed.
func OverallStreak(s *State) int {
	threshold := int(math.Ceil(float64(CatalogSize()) * 0.7))
	return backwardStreak(s, func(d *DayRecord) bool {
		return len(d.Completed) >= threshold
	})
}

func backwardStreak(s *State, qualifies func(*DayRecord) bool) int {
	dayAt := func(offset int) *DayRecord {
		d, ok := s.Days[AddDays(s.Today, -offset)]
		if !ok {
			return &DayRecord{}
		}
		return d
	}

	streak := 0
	if qualifies(dayAt(0)) {
		streak = 1
	}
	for i := 1; i < streakLookback; i++ {
		if !qualifies(dayAt(i)) {
			break
		}
		streak++
	}
	return streak
}
