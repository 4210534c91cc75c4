package engine

import (
	"testing"
	"time"
)

func newTestState(t *testing.T) *State {
	t.Helper()
	s := NewState(time.Date(2024, 6, 15, 12, 0, 0, 0, time.Local))
	if s.Today != "2024-06-15" {
		t.Fatalf("today=%s, want 2024-06-15", s.Today)
	}
	return s
}

func completeAll(s *State, key string) {
	for _, h := range Catalog {
		s.SetCompleted(key, h.ID, true)
	}
}

func TestSettleBronzeNoPunishment(t *testing.T) {
	s := newTestState(t)
	s.UserPower = 500

	// 2 of 9 habits missed, worth 10 each.
	key := "2024-06-14"
	completeAll(s, key)
	s.SetCompleted(key, "reading", false)
	s.SetCompleted(key, "sleep", false)

	res := Settle(s, key)
	if !res.Applied {
		t.Fatalf("expected settlement to apply")
	}
	if res.Tier != TierBronze {
		t.Fatalf("tier=%s, want bronze", res.Tier)
	}
	if res.Punishment != 0 {
		t.Fatalf("punishment=%d, want 0", res.Punishment)
	}
	if s.UserPower != 500 {
		t.Fatalf("userPower=%d, want 500 (bronze is punishment-free)", s.UserPower)
	}
	if s.ShadowPower != 20 {
		t.Fatalf("shadowPower=%d, want 20", s.ShadowPower)
	}
}

func TestSettleGoldTier(t *testing.T) {
	s := newTestState(t)
	s.UserPower = 3000

	// Miss meditation (5) plus two 10-point habits: 25 missed points.
	key := "2024-06-14"
	completeAll(s, key)
	s.SetCompleted(key, "meditation", false)
	s.SetCompleted(key, "reading", false)
	s.SetCompleted(key, "nutrition", false)

	res := Settle(s, key)
	if res.MissedPoints != 25 {
		t.Fatalf("missedPoints=%d, want 25", res.MissedPoints)
	}
	if res.Punishment != 25 {
		t.Fatalf("punishment=%d, want 25 (gold multiplier 1)", res.Punishment)
	}
	if s.UserPower != 2975 {
		t.Fatalf("userPower=%d, want 2975", s.UserPower)
	}
	if s.ShadowPower != 25 {
		t.Fatalf("shadowPower=%d, want 25", s.ShadowPower)
	}
}

func TestSettleGogginsTier(t *testing.T) {
	s := newTestState(t)
	s.UserPower = 16000

	// gym (15) + meditation (5) + reading (10): 30 missed points.
	key := "2024-06-14"
	completeAll(s, key)
	s.SetCompleted(key, "gym", false)
	s.SetCompleted(key, "meditation", false)
	s.SetCompleted(key, "reading", false)

	res := Settle(s, key)
	if res.Punishment != 120 {
		t.Fatalf("punishment=%d, want 120 (goggins multiplier 4)", res.Punishment)
	}
	if s.UserPower != 15880 {
		t.Fatalf("userPower=%d, want 15880", s.UserPower)
	}
	if s.ShadowPower != 30 {
		t.Fatalf("shadowPower=%d, want 30", s.ShadowPower)
	}
}

func TestSettleIdempotentReplay(t *testing.T) {
	s := newTestState(t)
	s.UserPower = 3000

	key := "2024-06-14"
	completeAll(s, key)
	s.SetCompleted(key, "meditation", false)
	s.SetCompleted(key, "reading", false)
	s.SetCompleted(key, "nutrition", false)

	Settle(s, key)
	userAfter, shadowAfter := s.UserPower, s.ShadowPower

	res := Settle(s, key)
	if res.Applied {
		t.Fatalf("second settle must be a no-op")
	}
	if s.UserPower != userAfter || s.ShadowPower != shadowAfter {
		t.Fatalf("replay changed accounts: user %d→%d shadow %d→%d",
			userAfter, s.UserPower, shadowAfter, s.ShadowPower)
	}
}

func TestSettleNeverTouchesTodayOrFuture(t *testing.T) {
	s := newTestState(t)

	if res := Settle(s, s.Today); res.Applied {
		t.Fatalf("settled today")
	}
	if res := Settle(s, AddDays(s.Today, 1)); res.Applied {
		t.Fatalf("settled the future")
	}
	if s.Day(s.Today).Settled {
		t.Fatalf("today flagged settled")
	}
	if s.ShadowPower != 0 {
		t.Fatalf("shadow gained power without settlement")
	}
}

func TestSettleConservation(t *testing.T) {
	// Every catalog point lands on exactly one side after settlement.
	s := newTestState(t)
	key := "2024-06-14"
	s.SetCompleted(key, "gym", true)
	s.SetCompleted(key, "reading", true)

	userBase := s.Day(key).BasePoints()
	res := Settle(s, key)
	if userBase+res.MissedPoints != CatalogTotalPoints() {
		t.Fatalf("conservation broken: %d earned + %d missed != %d total",
			userBase, res.MissedPoints, CatalogTotalPoints())
	}
	if s.ShadowPower != res.MissedPoints {
		t.Fatalf("shadow got %d, want the full missed total %d", s.ShadowPower, res.MissedPoints)
	}
}

func TestReconcileSettlesAllElapsedDays(t *testing.T) {
	s := newTestState(t)
	// Three past days with records; one already settled.
	s.Day("2024-06-12")
	s.Day("2024-06-13")
	s.Day("2024-06-14").Settled = true
	s.Day(s.Today)

	results := Reconcile(s)
	if len(results) != 2 {
		t.Fatalf("settled %d days, want 2", len(results))
	}
	if results[0].DateKey != "2024-06-12" || results[1].DateKey != "2024-06-13" {
		t.Fatalf("settlement order %v, want ascending dates", []string{results[0].DateKey, results[1].DateKey})
	}
	if s.Day(s.Today).Settled {
		t.Fatalf("reconcile settled today")
	}
	// Two fully-missed days.
	if want := 2 * CatalogTotalPoints(); s.ShadowPower != want {
		t.Fatalf("shadowPower=%d, want %d", s.ShadowPower, want)
	}
}

func TestAdvanceDay(t *testing.T) {
	s := newTestState(t)
	s.UserPower = 3000
	completeAll(s, s.Today)
	s.SetCompleted(s.Today, "gym", false)

	res := AdvanceDay(s)
	if !res.Applied {
		t.Fatalf("expected the skipped day to settle")
	}
	if res.DateKey != "2024-06-15" {
		t.Fatalf("settled %s, want 2024-06-15", res.DateKey)
	}
	if s.Today != "2024-06-16" {
		t.Fatalf("today=%s, want 2024-06-16", s.Today)
	}
	if s.Viewing != s.Today {
		t.Fatalf("viewing=%s, want pinned to new today %s", s.Viewing, s.Today)
	}
	if s.UserPower != 3000-15 {
		t.Fatalf("userPower=%d, want 2985 (gym missed at gold)", s.UserPower)
	}
	if s.ShadowPower != 15 {
		t.Fatalf("shadowPower=%d, want 15", s.ShadowPower)
	}
}

func TestCatchUpMaterializesGapDays(t *testing.T) {
	s := newTestState(t)

	results, changed := CatchUp(s, "2024-06-18")
	if !changed {
		t.Fatalf("expected day change")
	}
	// 15th, 16th, 17th elapsed untouched; all must settle.
	if len(results) != 3 {
		t.Fatalf("settled %d days, want 3", len(results))
	}
	if want := 3 * CatalogTotalPoints(); s.ShadowPower != want {
		t.Fatalf("shadowPower=%d, want %d", s.ShadowPower, want)
	}
	if s.Today != "2024-06-18" || s.Viewing != "2024-06-18" {
		t.Fatalf("cursors=%s/%s, want both 2024-06-18", s.Today, s.Viewing)
	}

	if _, changed := CatchUp(s, "2024-06-18"); changed {
		t.Fatalf("same-day catch-up must short-circuit")
	}
}
