package engine

import (
	"testing"
	"time"

	"github.com/p119ro/dopelganger/internal/storage"
)

func TestSerializedRoundTrip(t *testing.T) {
	s := newTestState(t)
	s.UserPower = 1200
	s.ShadowPower = 340
	s.UserName = "Riko"
	s.FirstTime = false
	s.SetCompleted(s.Today, "gym", true)
	s.SetCompleted("2024-06-14", "reading", true)
	s.Day("2024-06-14").Settled = true
	s.Achievements[AchievementPerfectDay] = true
	if _, err := CreateTeam(s, "Owls"); err != nil {
		t.Fatal(err)
	}

	got := fromSerialized(toSerialized(s), time.Date(2024, 6, 15, 12, 0, 0, 0, time.Local))

	if got.UserPower != 1200 || got.ShadowPower != 340 {
		t.Fatalf("power=%d/%d", got.UserPower, got.ShadowPower)
	}
	if got.Today != s.Today || got.Viewing != s.Viewing {
		t.Fatalf("dates=%s/%s", got.Today, got.Viewing)
	}
	if !got.IsCompleted(got.Today, "gym") || !got.IsCompleted("2024-06-14", "reading") {
		t.Fatalf("completions lost")
	}
	if !got.Day("2024-06-14").Settled {
		t.Fatalf("settled flag lost")
	}
	if !got.Achievements[AchievementPerfectDay] {
		t.Fatalf("achievements lost")
	}
	if got.Team == nil || got.Team.Name != "Owls" {
		t.Fatalf("team lost: %+v", got.Team)
	}
}

func TestFromSerializedFiltersUnknownHabits(t *testing.T) {
	blob := &storage.SerializedState{
		DailyData: map[string]storage.DayData{
			"2024-06-14": {CompletedHabitIDs: []string{"gym", "doomscrolling", "reading"}},
		},
		Today:   "2024-06-15",
		Viewing: "2024-06-15",
	}

	s := fromSerialized(blob, time.Date(2024, 6, 15, 12, 0, 0, 0, time.Local))
	day := s.Day("2024-06-14")
	if len(day.Completed) != 2 {
		t.Fatalf("completed=%v, want unknown id dropped", day.Completed)
	}
}

func TestFromSerializedClampsViewing(t *testing.T) {
	blob := &storage.SerializedState{
		Today:   "2024-06-15",
		Viewing: "2024-06-20", // ahead of today, e.g. a hand-edited blob
	}

	s := fromSerialized(blob, time.Date(2024, 6, 15, 12, 0, 0, 0, time.Local))
	if s.Viewing != "2024-06-15" {
		t.Fatalf("viewing=%s, want clamped to today", s.Viewing)
	}
}
