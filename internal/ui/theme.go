package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Dopelganger theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconUser    = "🛡️"
	IconShadow  = "👤"
	IconDone    = "✅"
	IconMissed  = "⭕"
	IconStreak  = "🔥"
	IconTrophy  = "🏆"
	IconBolt    = "⚡"
	IconTeam    = "🤝"
	IconBattle  = "⚔️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconSparkle = "✨"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold)
)

// tierColors maps tier names to their display color.
var tierColors = map[string]lipgloss.Color{
	"bronze":   lipgloss.Color("130"),
	"silver":   lipgloss.Color("250"),
	"gold":     cGold,
	"platinum": lipgloss.Color("45"),
	"diamond":  lipgloss.Color("51"),
	"goggins":  cBad,
}

// TierText renders a tier name in its color.
func TierText(tier string) string {
	c, ok := tierColors[tier]
	if !ok {
		c = cMuted
	}
	return lipgloss.NewStyle().Bold(true).Foreground(c).Render(tier)
}

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// PowerBar renders the user/shadow split as a fixed-width meter.
func PowerBar(userPct int, width int) string {
	if width < 4 {
		width = 4
	}
	if userPct < 0 {
		userPct = 0
	}
	if userPct > 100 {
		userPct = 100
	}
	filled := userPct * width / 100
	return Good.Render(strings.Repeat("█", filled)) + Bad.Render(strings.Repeat("░", width-filled))
}

// CheckIcon returns the completion marker for a habit row.
func CheckIcon(done bool) string {
	if done {
		return IconDone
	}
	return IconMissed
}
