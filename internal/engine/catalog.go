package engine

// Habit is one entry of the fixed daily catalog. Identity is the ID; the
// point value is what a completion credits and what a miss eventually costs.
type Habit struct {
	ID     string
	Name   string
	Points int
	Icon   string
}

// Catalog is the fixed set of daily habits.
var Catalog = []Habit{
	{ID: "reading", Name: "Read 30 minutes", Points: 10, Icon: "📚"},
	{ID: "screentime", Name: "Screen time <2 hours", Points: 10, Icon: "📵"},
	{ID: "gym", Name: "Gym session", Points: 15, Icon: "💪"},
	{ID: "sleep", Name: "Sleep 7-9 hours", Points: 10, Icon: "😴"},
	{ID: "deepwork", Name: "90 min deep work", Points: 15, Icon: "🎯"},
	{ID: "cardio", Name: "20 min cardio", Points: 10, Icon: "🏃"},
	{ID: "meditation", Name: "Meditate 10 min", Points: 5, Icon: "🧘"},
	{ID: "coldshower", Name: "Cold shower", Points: 5, Icon: "❄️"},
	{ID: "nutrition", Name: "No sugar/processed food", Points: 10, Icon: "🍽️"},
}

var catalogByID = func() map[string]Habit {
	m := make(map[string]Habit, len(Catalog))
	for _, h := range Catalog {
		m[h.ID] = h
	}
	return m
}()

// LookupHabit returns the catalog entry for id, if any.
func LookupHabit(id string) (Habit, bool) {
	h, ok := catalogByID[id]
	return h, ok
}

// HabitPoints returns the point value for id, or 0 for an unknown id.
func HabitPoints(id string) int {
	return catalogByID[id].Points
}

// CatalogSize returns the number of habits in the catalog.
func CatalogSize() int {
	return len(Catalog)
}

// CatalogTotalPoints is the sum of all habit point values, i.e. the most a
// single day can credit to either side of the power economy.
func CatalogTotalPoints() int {
	total := 0
	for _, h := range Catalog {
		total += h.Points
	}
	return total
}
