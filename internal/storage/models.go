package storage

// SerializedState is the single persisted blob. Field names match the JSON
// layout the app has always written, so an existing database keeps loading
// across versions.
type SerializedState struct {
	DailyData   map[string]DayData `json:"dailyData"`
	UserPower   int                `json:"userPower"`
	ShadowPower int                `json:"shadowPower"`
	Today       string             `json:"today"`
	Viewing     string             `json:"viewing"`

	// Display-layer fields co-located in the same blob.
	UserName     string          `json:"userName,omitempty"`
	FirstTime    bool            `json:"isFirstTime"`
	Tier         string          `json:"tier,omitempty"`
	Achievements map[string]bool `json:"achievements,omitempty"`
	Team         *TeamData       `json:"team,omitempty"`
}

// DayData is one ledger day as persisted.
type DayData struct {
	CompletedHabitIDs []string `json:"completedHabitIds"`
	Settled           bool     `json:"settled"`
}

// TeamData is the persisted team simulation state.
type TeamData struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Members []MemberData `json:"members,omitempty"`
}

type MemberData struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}
