package engine

// Tier is a named bracket of cumulative user power. The tier determines how
// harshly missed habits are punished at settlement.
type Tier string

const (
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
	TierDiamond  Tier = "diamond"
	TierGoggins  Tier = "goggins"
)

type tierBand struct {
	Threshold  int
	Tier       Tier
	Multiplier float64
}

// tierTable is ordered ascending by threshold. TierFor picks the highest
// threshold not exceeding the given power.
var tierTable = []tierBand{
	{0, TierBronze, 0},
	{1000, TierSilver, 0.5},
	{2500, TierGold, 1},
	{5000, TierPlatinum, 2},
	{7500, TierDiamond, 3},
	{15000, TierGoggins, 4},
}

// TierFor returns the tier for the given user power. Negative power still
// maps to the lowest tier.
func TierFor(power int) Tier {
	current := tierTable[0].Tier
	for _, band := range tierTable {
		if power < band.Threshold {
			break
		}
		current = band.Tier
	}
	return current
}

// MultiplierFor returns the punishment multiplier for a tier, 0 for unknown.
func MultiplierFor(tier Tier) float64 {
	for _, band := range tierTable {
		if band.Tier == tier {
			return band.Multiplier
		}
	}
	return 0
}

// TierRank returns the ordinal position of a tier (bronze=0 … goggins=5),
// 0 for unknown input.
func TierRank(tier Tier) int {
	for i, band := range tierTable {
		if band.Tier == tier {
			return i
		}
	}
	return 0
}

// TierProgress returns the percent progress (0–100) through the current
// tier's power band. The top tier has no next threshold and reports 100.
func TierProgress(power int) int {
	idx := TierRank(TierFor(power))
	if idx >= len(tierTable)-1 {
		return 100
	}
	lo := tierTable[idx].Threshold
	hi := tierTable[idx+1].Threshold
	pct := (power - lo) * 100 / (hi - lo)
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// NextTierThreshold returns the power needed for the next tier and false if
// the given power is already in the top band.
func NextTierThreshold(power int) (int, bool) {
	idx := TierRank(TierFor(power))
	if idx >= len(tierTable)-1 {
		return 0, false
	}
	return tierTable[idx+1].Threshold, true
}
