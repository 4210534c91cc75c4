package engine

// Achievement badge IDs. Earned flags live in the state blob and are
// monotone: once set they never revert, even if the qualifying condition
// later lapses.
const (
	AchievementFirstWeek    = "first-week"
	AchievementPerfectDay   = "perfect-day"
	AchievementStreakMaster = "streak-master"
	AchievementTeamPlayer   = "team-player"
	AchievementTopPerformer = "top-performer"
)

// Achievement is a badge with its earned status.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Earned      bool
}

// CheckAchievements re-evaluates every badge condition against the current
// state and latches newly earned ones. Returns the IDs earned by this call.
func CheckAchievements(s *State) []string {
	if s.Achievements == nil {
		s.Achievements = map[string]bool{}
	}

	var earned []string
	latch := func(id string, ok bool) {
		if ok && !s.Achievements[id] {
			s.Achievements[id] = true
			earned = append(earned, id)
		}
	}

	overall := OverallStreak(s)
	latch(AchievementFirstWeek, overall >= 7)
	latch(AchievementStreakMaster, overall >= 30)
	latch(AchievementPerfectDay, len(s.Day(s.Today).Completed) == CatalogSize())
	latch(AchievementTeamPlayer, s.Team != nil)
	latch(AchievementTopPerformer, MonthlyPoints(s) > 5000)
	return earned
}

// Achievements returns all badges with their persisted earned status.
func Achievements(s *State) []Achievement {
	defs := []Achievement{
		{ID: AchievementFirstWeek, Name: "First Week", Description: "Keep a 7-day overall streak", Icon: "🌱"},
		{ID: AchievementPerfectDay, Name: "Perfect Day", Description: "Complete every habit in one day", Icon: "✨"},
		{ID: AchievementStreakMaster, Name: "Streak Master", Description: "Keep a 30-day overall streak", Icon: "🔥"},
		{ID: AchievementTeamPlayer, Name: "Team Player", Description: "Create or join a team", Icon: "🤝"},
		{ID: AchievementTopPerformer, Name: "Top Performer", Description: "Earn over 5000 points in 30 days", Icon: "🏆"},
	}
	for i := range defs {
		defs[i].Earned = s.Achievements[defs[i].ID]
	}
	return defs
}
