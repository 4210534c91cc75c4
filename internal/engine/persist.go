package engine

import (
	"time"

	"github.com/p119ro/dopelganger/internal/storage"
)

// toSerialized converts the live state into the persisted blob layout.
func toSerialized(s *State) *storage.SerializedState {
	daily := make(map[string]storage.DayData, len(s.Days))
	for key, d := range s.Days {
		daily[key] = storage.DayData{
			CompletedHabitIDs: append([]string(nil), d.Completed...),
			Settled:           d.Settled,
		}
	}

	blob := &storage.SerializedState{
		DailyData:    daily,
		UserPower:    s.UserPower,
		ShadowPower:  s.ShadowPower,
		Today:        s.Today,
		Viewing:      s.Viewing,
		UserName:     s.UserName,
		FirstTime:    s.FirstTime,
		Tier:         string(TierFor(s.UserPower)),
		Achievements: s.Achievements,
	}
	if s.Team != nil {
		members := make([]storage.MemberData, len(s.Team.Members))
		for i, m := range s.Team.Members {
			members[i] = storage.MemberData{Name: m.Name, Score: m.Score}
		}
		blob.Team = &storage.TeamData{ID: s.Team.ID, Name: s.Team.Name, Members: members}
	}
	return blob
}

// fromSerialized rebuilds the live state from a loaded blob, filling gaps a
// blob from an older version may have.
func fromSerialized(blob *storage.SerializedState, now time.Time) *State {
	s := NewState(now)
	s.UserPower = blob.UserPower
	s.ShadowPower = blob.ShadowPower
	s.UserName = blob.UserName
	s.FirstTime = blob.FirstTime

	if blob.Today != "" {
		s.Today = blob.Today
	}
	if blob.Viewing != "" && blob.Viewing <= s.Today {
		s.Viewing = blob.Viewing
	} else {
		s.Viewing = s.Today
	}

	for key, d := range blob.DailyData {
		rec := s.Day(key)
		rec.Settled = d.Settled
		// Re-filter through the catalog; a hand-edited blob must not smuggle
		// unknown habit IDs into the ledger.
		for _, id := range d.CompletedHabitIDs {
			s.SetCompleted(key, id, true)
		}
	}

	if blob.Achievements != nil {
		s.Achievements = blob.Achievements
	}
	if blob.Team != nil {
		members := make([]TeamMember, len(blob.Team.Members))
		for i, m := range blob.Team.Members {
			members[i] = TeamMember{Name: m.Name, Score: m.Score}
		}
		s.Team = &Team{ID: blob.Team.ID, Name: blob.Team.Name, Members: members}
	}
	return s
}
