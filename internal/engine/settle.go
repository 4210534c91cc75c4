package engine

import "math"

// SettleResult reports what a single day's settlement moved. Zero-valued
// with Applied=false when the call was a no-op.
type SettleResult struct {
	DateKey      string
	Applied      bool
	MissedPoints int
	Tier         Tier
	Punishment   int
}

// Settle runs the one-time day-end settlement for a past date: the day's
// missed points are credited to the shadow in full, and the user is punished
// by the missed points scaled by the multiplier of their *current* tier.
//
// The tier is deliberately evaluated at settlement time, not snapshotted per
// day; a missed day costs more the higher the user has since climbed. See
// DESIGN.md for the tension this carries.
//
// Settling today, the future, or an already-settled day is a no-op — the
// Settled flag is the idempotence guard against double punishment.
func Settle(s *State, dateKey string) SettleResult {
	if dateKey >= s.Today {
		return SettleResult{DateKey: dateKey}
	}
	day := s.Day(dateKey)
	if day.Settled {
		return SettleResult{DateKey: dateKey}
	}

	missed := day.MissedPoints()
	tier := TierFor(s.UserPower)
	punishment := int(math.Floor(float64(missed) * MultiplierFor(tier)))

	s.UserPower -= punishment
	s.ShadowPower += missed
	day.Settled = true

	return SettleResult{
		DateKey:      dateKey,
		Applied:      true,
		MissedPoints: missed,
		Tier:         tier,
		Punishment:   punishment,
	}
}

// Reconcile settles every elapsed unsettled day in ascending date order.
// Settlement is per-date and commutative, but the fixed order keeps the
// output deterministic for logging and tests. Returns the settlements that
// actually applied.
func Reconcile(s *State) []SettleResult {
	var applied []SettleResult
	for _, key := range s.sortedDayKeys() {
		if key >= s.Today {
			continue
		}
		if s.Days[key].Settled {
			continue
		}
		if res := Settle(s, key); res.Applied {
			applied = append(applied, res)
		}
	}
	return applied
}

// AdvanceDay is the debug/operational day skip: it settles the current day
// immediately, advances Today by one calendar day, and pins Viewing to the
// new today. It exists so the settlement path can be exercised without
// waiting for the clock.
func AdvanceDay(s *State) SettleResult {
	next := AddDays(s.Today, 1)
	// Touch the record first so the day settles even if nothing was checked.
	s.Day(s.Today)
	s.Today = next
	res := Settle(s, AddDays(next, -1))
	s.Viewing = s.Today
	return res
}

// CatchUp moves Today forward to match the wall clock and settles whatever
// elapsed in between. It reports whether the date actually changed, so
// periodic callers can short-circuit without a ledger scan.
func CatchUp(s *State, todayKey string) ([]SettleResult, bool) {
	if todayKey <= s.Today {
		return nil, false
	}
	followViewing := s.ViewingToday()
	// Materialize a record for every elapsed day so blank days (never viewed
	// while the app was closed) still get settled.
	for key := s.Today; key < todayKey; key = AddDays(key, 1) {
		s.Day(key)
	}
	s.Today = todayKey
	if followViewing || s.Viewing > s.Today {
		s.Viewing = s.Today
	}
	return Reconcile(s), true
}
