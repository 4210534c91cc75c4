package engine

import "math"

// DailySummary is the per-day scoring panel for the viewing date: what was
// earned, what a settlement at the current tier would cost, and the final
// score after the team multiplier.
type DailySummary struct {
	DateKey      string
	Completed    int
	Total        int
	BasePoints   int
	MissedPoints int
	Punishment   int
	NetScore     int
	FinalScore   int
}

// SummarizeDay computes the summary for the viewing date. The punishment
// column is a preview at the current tier; actual settlement happens only
// once the day is in the past.
func SummarizeDay(s *State) DailySummary {
	day := s.Day(s.Viewing)
	base := day.BasePoints()
	missed := day.MissedPoints()
	punishment := int(math.Floor(float64(missed) * MultiplierFor(TierFor(s.UserPower))))
	net := base - punishment
	final := int(math.Round(float64(net) * TeamMultiplier(s)))
	return DailySummary{
		DateKey:      s.Viewing,
		Completed:    len(day.Completed),
		Total:        CatalogSize(),
		BasePoints:   base,
		MissedPoints: missed,
		Punishment:   punishment,
		NetScore:     net,
		FinalScore:   final,
	}
}

// monthlyLookback matches the display window: the last 30 days incl. today.
const monthlyLookback = 30

// MonthlyPoints sums completed-habit points over the last 30 days including
// today.
func MonthlyPoints(s *State) int {
	total := 0
	for i := 0; i < monthlyLookback; i++ {
		if d, ok := s.Days[AddDays(s.Today, -i)]; ok {
			total += d.BasePoints()
		}
	}
	return total
}
