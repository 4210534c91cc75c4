package engine

// ToggleResult reports the outcome of a habit toggle.
type ToggleResult struct {
	Applied     bool
	Habit       Habit
	Completed   bool
	UserDelta   int
	ShadowDelta int
	// Corrected is true when the toggle hit an already-settled past day and
	// the settlement was symmetrically reversed for this one habit.
	Corrected bool
}

// ToggleHabit sets the completion state of habitID on the viewing date and
// applies the matching power delta. Unknown habits, already-matching states,
// and dates outside the edit policy are silent no-ops.
//
// Steady-state policy allows edits only while the viewing cursor sits on
// today. With allowPastEdits, a settled past day may be edited too; the
// toggle then also reverses that day's settlement effect for the single
// habit — completing a previously-missed habit takes its points back from
// the shadow, un-completing gives them back. Full settlement is never
// re-run.
func ToggleHabit(s *State, habitID string, completed bool, allowPastEdits bool) ToggleResult {
	habit, ok := LookupHabit(habitID)
	if !ok {
		return ToggleResult{}
	}
	if !s.ViewingToday() && !allowPastEdits {
		return ToggleResult{}
	}

	day := s.Day(s.Viewing)
	if day.has(habitID) == completed {
		return ToggleResult{}
	}

	correct := day.Settled && !s.ViewingToday()

	s.SetCompleted(s.Viewing, habitID, completed)

	res := ToggleResult{Applied: true, Habit: habit, Completed: completed}
	if completed {
		res.UserDelta = habit.Points
		if correct {
			res.ShadowDelta = -habit.Points
		}
	} else {
		res.UserDelta = -habit.Points
		if correct {
			res.ShadowDelta = habit.Points
		}
	}
	res.Corrected = correct

	s.UserPower += res.UserDelta
	s.ShadowPower += res.ShadowDelta
	return res
}
