package engine

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// The team layer is a local simulation: scores and leaderboards derive from
// the player's own day, no other member's data is real.

const (
	teamMaxScore = 500
	teamBaseline = 150
)

// TeamStats is the derived daily team panel.
type TeamStats struct {
	DailyScore int
	MaxScore   int
	Grade      string
	Multiplier float64
}

// CreateTeam starts a team with the player as its only member. The code is
// what other (simulated) members would join with.
func CreateTeam(s *State, name string) (*Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("team name is required")
	}
	member := s.UserName
	if member == "" {
		member = "You"
	}
	s.Team = &Team{
		ID:      "team_" + uuid.NewString(),
		Name:    name,
		Members: []TeamMember{{Name: member}},
	}
	s.Achievements[AchievementTeamPlayer] = true
	return s.Team, nil
}

// JoinTeam joins an existing team by code. Teammates are simulated.
func JoinTeam(s *State, code string) (*Team, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, errors.New("team code is required")
	}
	member := s.UserName
	if member == "" {
		member = "You"
	}
	suffix := code
	if len(suffix) > 10 {
		suffix = suffix[5:10]
	}
	s.Team = &Team{
		ID:   code,
		Name: "Team " + suffix,
		Members: []TeamMember{
			{Name: member},
			{Name: "TeamMate_1", Score: 45},
			{Name: "TeamMate_2", Score: 38},
		},
	}
	s.Achievements[AchievementTeamPlayer] = true
	return s.Team, nil
}

// TeamDailyScore is the team's simulated collective score for the viewing
// day: the player's base points plus a fixed teammate baseline, capped.
func TeamDailyScore(s *State) int {
	if s.Team == nil {
		return 0
	}
	score := s.Day(s.Viewing).BasePoints() + teamBaseline
	if score > teamMaxScore {
		return teamMaxScore
	}
	return score
}

// TeamGrade returns the grade label and score multiplier for a daily score.
func TeamGrade(dailyScore int) (string, float64) {
	switch {
	case dailyScore >= 450:
		return "Excellent", 1.10
	case dailyScore >= 400:
		return "Good", 1.05
	case dailyScore >= 300:
		return "Average", 1.00
	default:
		return "Poor", 0.95
	}
}

// TeamMultiplier is the score multiplier the daily summary applies; 1.0
// without a team.
func TeamMultiplier(s *State) float64 {
	if s.Team == nil {
		return 1.0
	}
	_, mult := TeamGrade(TeamDailyScore(s))
	return mult
}

// TeamStatsFor derives the full team panel.
func TeamStatsFor(s *State) TeamStats {
	score := TeamDailyScore(s)
	grade, mult := TeamGrade(score)
	if s.Team == nil {
		return TeamStats{MaxScore: teamMaxScore, Grade: "No Team", Multiplier: 1.00}
	}
	return TeamStats{DailyScore: score, MaxScore: teamMaxScore, Grade: grade, Multiplier: mult}
}

// LeaderboardEntry is one simulated leaderboard row.
type LeaderboardEntry struct {
	Rank  int
	Name  string
	Score int
	Own   bool
}

// Leaderboard returns the simulated weekly standings with the player's team
// slotted in. Empty without a team.
func Leaderboard(s *State) []LeaderboardEntry {
	if s.Team == nil {
		return nil
	}
	return []LeaderboardEntry{
		{Rank: 1, Name: "Elite Squad", Score: 2340},
		{Rank: 2, Name: "Habit Hackers", Score: 2180},
		{Rank: 3, Name: s.Team.Name, Score: TeamDailyScore(s) * 7, Own: true},
		{Rank: 4, Name: "Morning Warriors", Score: 1950},
		{Rank: 5, Name: "Discipline Devils", Score: 1890},
	}
}

// MemberScores returns the member list with the player's live score for the
// viewing day.
func MemberScores(s *State) []TeamMember {
	if s.Team == nil {
		return nil
	}
	out := make([]TeamMember, len(s.Team.Members))
	copy(out, s.Team.Members)
	if len(out) > 0 {
		out[0].Score = s.Day(s.Viewing).BasePoints()
	}
	return out
}
