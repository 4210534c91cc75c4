package engine

import (
	"sort"
	"time"
)

// DayRecord is the per-day ledger entry. Completed holds catalog habit IDs
// checked off that day; Settled flips to true exactly once, when the day-end
// settlement has converted its misses into punishment and shadow power.
type DayRecord struct {
	Completed []string
	Settled   bool
}

func (d *DayRecord) has(habitID string) bool {
	for _, id := range d.Completed {
		if id == habitID {
			return true
		}
	}
	return false
}

// BasePoints is the sum of point values of the day's completed habits.
func (d *DayRecord) BasePoints() int {
	total := 0
	for _, id := range d.Completed {
		total += HabitPoints(id)
	}
	return total
}

// MissedPoints is the sum of point values of catalog habits not completed
// that day.
func (d *DayRecord) MissedPoints() int {
	return CatalogTotalPoints() - d.BasePoints()
}

// Team is the cosmetic local team simulation. Only membership matters to the
// engine (the team-player achievement); scores derive from the day's points.
type Team struct {
	ID      string
	Name    string
	Members []TeamMember
}

type TeamMember struct {
	Name  string
	Score int
}

// State is the whole application state: the daily ledger, both power
// accounts, the date cursors, and the display-only profile fields that share
// the persisted blob. Engine operations are functions over *State with no
// I/O; Service owns loading and saving it.
type State struct {
	Days map[string]*DayRecord

	UserPower   int
	ShadowPower int

	// Today is the authoritative calendar date; Viewing is the cursor habit
	// edits target. Viewing never exceeds Today.
	Today   string
	Viewing string

	UserName  string
	FirstTime bool

	Achievements map[string]bool
	Team         *Team
}

// NewState returns a fresh state pinned to the given wall-clock time.
func NewState(now time.Time) *State {
	today := DateKey(now)
	return &State{
		Days:         map[string]*DayRecord{},
		Today:        today,
		Viewing:      today,
		FirstTime:    true,
		Achievements: map[string]bool{},
	}
}

// Clone returns a deep copy sharing nothing with the receiver.
func (s *State) Clone() *State {
	out := *s
	out.Days = make(map[string]*DayRecord, len(s.Days))
	for k, d := range s.Days {
		out.Days[k] = &DayRecord{
			Completed: append([]string(nil), d.Completed...),
			Settled:   d.Settled,
		}
	}
	out.Achievements = make(map[string]bool, len(s.Achievements))
	for k, v := range s.Achievements {
		out.Achievements[k] = v
	}
	if s.Team != nil {
		team := *s.Team
		team.Members = append([]TeamMember(nil), s.Team.Members...)
		out.Team = &team
	}
	return &out
}

// Day returns the record for key, creating an empty unsettled one on first
// touch. Records are never deleted individually.
func (s *State) Day(key string) *DayRecord {
	if s.Days == nil {
		s.Days = map[string]*DayRecord{}
	}
	d, ok := s.Days[key]
	if !ok {
		d = &DayRecord{}
		s.Days[key] = d
	}
	return d
}

// IsCompleted reports whether habitID was completed on the given day.
func (s *State) IsCompleted(key, habitID string) bool {
	return s.Day(key).has(habitID)
}

// SetCompleted sets the completion state of habitID on the given day.
// Unknown habit IDs and matching states are silent no-ops.
func (s *State) SetCompleted(key, habitID string, completed bool) {
	if _, ok := LookupHabit(habitID); !ok {
		return
	}
	d := s.Day(key)
	if completed == d.has(habitID) {
		return
	}
	if completed {
		d.Completed = append(d.Completed, habitID)
		return
	}
	kept := d.Completed[:0]
	for _, id := range d.Completed {
		if id != habitID {
			kept = append(kept, id)
		}
	}
	d.Completed = kept
}

// sortedDayKeys returns all ledger dates in ascending order.
func (s *State) sortedDayKeys() []string {
	keys := make([]string, 0, len(s.Days))
	for k := range s.Days {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ChangeViewing moves the viewing cursor by delta days, clamped so it never
// passes Today. Returns true when the cursor moved.
func (s *State) ChangeViewing(delta int) bool {
	next := AddDays(s.Viewing, delta)
	if next > s.Today {
		return false
	}
	s.Viewing = next
	return true
}

// ViewingToday reports whether the viewing cursor sits on the authoritative
// today.
func (s *State) ViewingToday() bool {
	return s.Viewing == s.Today
}
