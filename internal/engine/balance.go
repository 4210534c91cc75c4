package engine

import "math"

// PowerBalance is the percentage split of total power between the user and
// the shadow. A zero total reads as an even 50/50 — the neutral start state,
// not a division-by-zero artifact.
type PowerBalance struct {
	UserPct     int
	ShadowPct   int
	UserPower   int
	ShadowPower int
}

// Balance derives the current power balance. Never stored; always recomputed
// from the accounts.
func Balance(s *State) PowerBalance {
	total := s.UserPower + s.ShadowPower
	if total == 0 {
		return PowerBalance{UserPct: 50, ShadowPct: 50}
	}
	return PowerBalance{
		UserPct:     int(math.Round(float64(s.UserPower) / float64(total) * 100)),
		ShadowPct:   int(math.Round(float64(s.ShadowPower) / float64(total) * 100)),
		UserPower:   s.UserPower,
		ShadowPower: s.ShadowPower,
	}
}

// LevelInfo is the display-layer leveling derived from user power. Negative
// power clamps to the first level.
type LevelInfo struct {
	Level   int
	Current int
	Next    int
}

const levelStep = 100

// UserLevel derives the user's level from power: one level per 100 positive
// power, starting at level 1.
func UserLevel(power int) LevelInfo {
	positive := power
	if positive < 0 {
		positive = 0
	}
	return LevelInfo{
		Level:   positive/levelStep + 1,
		Current: positive % levelStep,
		Next:    levelStep,
	}
}

// ShadowLevel mirrors UserLevel for the shadow account, floored at 1.
func ShadowLevel(power int) int {
	lvl := power/levelStep + 1
	if lvl < 1 {
		return 1
	}
	return lvl
}

// BattleStatus is the weekly battle display derived from the power balance.
type BattleStatus struct {
	Status       string
	UserHealth   int
	ShadowHealth int
}

// Battle derives the battle panel from the balance split.
func Battle(s *State) BattleStatus {
	b := Balance(s)
	switch {
	case b.UserPct >= 70:
		shadow := 100 - b.UserPct
		if shadow < 10 {
			shadow = 10
		}
		return BattleStatus{Status: "Victory Imminent", UserHealth: 100, ShadowHealth: shadow}
	case b.UserPct >= 50:
		return BattleStatus{
			Status:       "Fierce Battle",
			UserHealth:   50 + (b.UserPct-50)*2,
			ShadowHealth: 50 + (b.ShadowPct-50)*2,
		}
	default:
		user := b.UserPct * 2
		if user < 10 {
			user = 10
		}
		return BattleStatus{Status: "Shadow Winning", UserHealth: user, ShadowHealth: 100}
	}
}
