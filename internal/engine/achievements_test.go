package engine

import "testing"

func TestCheckAchievements(t *testing.T) {
	t.Run("perfect day latches", func(t *testing.T) {
		s := newTestState(t)
		completeAll(s, s.Today)

		earned := CheckAchievements(s)
		if !contains(earned, AchievementPerfectDay) {
			t.Fatalf("earned=%v, want perfect-day", earned)
		}

		// Undoing a habit does not revoke the badge.
		s.SetCompleted(s.Today, "gym", false)
		CheckAchievements(s)
		if !s.Achievements[AchievementPerfectDay] {
			t.Fatalf("badge revoked after undo")
		}
	})

	t.Run("streak badges at 7 and 30 days", func(t *testing.T) {
		s := newTestState(t)
		for i := 0; i < 7; i++ {
			completeAll(s, AddDays(s.Today, -i))
		}
		earned := CheckAchievements(s)
		if !contains(earned, AchievementFirstWeek) {
			t.Fatalf("earned=%v, want first-week", earned)
		}
		if contains(earned, AchievementStreakMaster) {
			t.Fatalf("streak-master at 7 days")
		}

		for i := 7; i < 30; i++ {
			completeAll(s, AddDays(s.Today, -i))
		}
		earned = CheckAchievements(s)
		if !contains(earned, AchievementStreakMaster) {
			t.Fatalf("earned=%v, want streak-master", earned)
		}
	})

	t.Run("earned reported only once", func(t *testing.T) {
		s := newTestState(t)
		completeAll(s, s.Today)
		if earned := CheckAchievements(s); len(earned) == 0 {
			t.Fatalf("no badges on first check")
		}
		if earned := CheckAchievements(s); len(earned) != 0 {
			t.Fatalf("repeat check re-reported %v", earned)
		}
	})

	t.Run("top performer needs over 5000 monthly points", func(t *testing.T) {
		s := newTestState(t)
		// 90 points a day for 30 days is 2700, not enough on its own; a
		// real player can't hit 5000 from the catalog, so force the window.
		for i := 0; i < 30; i++ {
			completeAll(s, AddDays(s.Today, -i))
		}
		CheckAchievements(s)
		if s.Achievements[AchievementTopPerformer] {
			t.Fatalf("top-performer earned at %d points", MonthlyPoints(s))
		}
	})
}

func TestAchievementsListing(t *testing.T) {
	s := newTestState(t)
	s.Achievements[AchievementTeamPlayer] = true

	defs := Achievements(s)
	if len(defs) != 5 {
		t.Fatalf("badges=%d, want 5", len(defs))
	}
	for _, d := range defs {
		want := d.ID == AchievementTeamPlayer
		if d.Earned != want {
			t.Fatalf("%s earned=%v, want %v", d.ID, d.Earned, want)
		}
	}
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
