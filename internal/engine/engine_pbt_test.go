package engine

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// dayStateFor builds a state with one past day whose completion set is
// driven by a bitmask over the catalog.
func dayStateFor(power int, mask int) (*State, string) {
	s := NewState(time.Date(2024, 6, 15, 12, 0, 0, 0, time.Local))
	s.UserPower = power
	key := AddDays(s.Today, -1)
	for i, h := range Catalog {
		s.SetCompleted(key, h.ID, mask&(1<<i) != 0)
	}
	return s, key
}

func TestSettlementProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	maskGen := gen.IntRange(0, 1<<CatalogSize()-1)
	powerGen := gen.IntRange(-2000, 20000)

	properties.Property("settlement is idempotent", prop.ForAll(
		func(power, mask int) bool {
			s, key := dayStateFor(power, mask)
			Settle(s, key)
			user, shadow := s.UserPower, s.ShadowPower
			res := Settle(s, key)
			return !res.Applied && s.UserPower == user && s.ShadowPower == shadow
		},
		powerGen, maskGen,
	))

	properties.Property("user loses floor(missed×mult), shadow gains missed", prop.ForAll(
		func(power, mask int) bool {
			s, key := dayStateFor(power, mask)
			missed := s.Day(key).MissedPoints()
			mult := MultiplierFor(TierFor(power))
			res := Settle(s, key)
			return res.Applied &&
				s.UserPower == power-int(float64(missed)*mult) &&
				s.ShadowPower == missed
		},
		powerGen, maskGen,
	))

	properties.Property("shadow power never decreases under settlement", prop.ForAll(
		func(power, mask int) bool {
			s, key := dayStateFor(power, mask)
			before := s.ShadowPower
			Settle(s, key)
			return s.ShadowPower >= before
		},
		powerGen, maskGen,
	))

	properties.Property("today and the future are never settled", prop.ForAll(
		func(power, mask, ahead int) bool {
			s, _ := dayStateFor(power, mask)
			key := AddDays(s.Today, ahead)
			res := Settle(s, key)
			return !res.Applied && s.UserPower == power && s.ShadowPower == 0
		},
		powerGen, maskGen, gen.IntRange(0, 30),
	))

	properties.TestingRun(t)
}

func TestTierProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("tier rank is monotone in power", prop.ForAll(
		func(a, b int) bool {
			if a > b {
				a, b = b, a
			}
			return TierRank(TierFor(a)) <= TierRank(TierFor(b))
		},
		gen.IntRange(-5000, 30000),
		gen.IntRange(-5000, 30000),
	))

	properties.Property("power meets its own tier threshold", prop.ForAll(
		func(power int) bool {
			tier := TierFor(power)
			if tier == TierBronze {
				return true
			}
			clamped := power
			if clamped < 0 {
				clamped = 0
			}
			return clamped >= tierThreshold(tier)
		},
		gen.IntRange(-5000, 30000),
	))

	properties.TestingRun(t)
}

func tierThreshold(tier Tier) int {
	for _, band := range tierTable {
		if band.Tier == tier {
			return band.Threshold
		}
	}
	return 0
}
