package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/p119ro/dopelganger/internal/engine"
	"github.com/p119ro/dopelganger/internal/ui"
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	pollInterval time.Duration

	width  int
	height int

	selected int
	lastLog  string
}

type tickMsg time.Time

type toggledMsg struct {
	res engine.ToggleResult
}

func newBoardModel(ctx context.Context, svc *engine.Service, pollInterval time.Duration) boardModel {
	return boardModel{
		ctx:          ctx,
		svc:          svc,
		pollInterval: pollInterval,
		lastLog:      "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.tickCmd()
}

func (m boardModel) tickCmd() tea.Cmd {
	return tea.Tick(m.pollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m boardModel) toggleCmd(habitID string, completed bool) tea.Cmd {
	return func() tea.Msg {
		return toggledMsg{res: m.svc.Toggle(m.ctx, habitID, completed)}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.svc.CheckDayChange(m.ctx) {
			m.lastLog = "New day — settled what was left behind."
		}
		return m, m.tickCmd()
	case toggledMsg:
		if !msg.res.Applied {
			m.lastLog = "Only today can be edited."
			return m, nil
		}
		verb := "Unchecked"
		if msg.res.Completed {
			verb = "Checked"
		}
		m.lastLog = fmt.Sprintf("%s %s (%+d power)", verb, msg.res.Habit.Name, msg.res.UserDelta)
		if msg.res.Corrected {
			m.lastLog += fmt.Sprintf(" — settled day corrected (%+d shadow)", msg.res.ShadowDelta)
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < engine.CatalogSize()-1 {
				m.selected++
			}
			return m, nil
		case "left", "h":
			if m.svc.ChangeViewing(m.ctx, -1) {
				m.lastLog = "Viewing " + m.svc.State().Viewing
			}
			return m, nil
		case "right", "l":
			if m.svc.ChangeViewing(m.ctx, 1) {
				m.lastLog = "Viewing " + m.svc.State().Viewing
			} else {
				m.lastLog = "Can't view the future."
			}
			return m, nil
		case "c", " ":
			st := m.svc.State()
			habit := engine.Catalog[m.selected]
			done := st.IsCompleted(st.Viewing, habit.ID)
			return m, m.toggleCmd(habit.ID, !done)
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := "\n" + m.lastLog

	// Simple 2-column layout.
	leftW := 40
	if m.width > 0 {
		maxLeft := m.width * 2 / 3
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 24 {
			leftW = 24
		}
	}

	linesLeft := strings.Split(main, "\n")
	linesRight := strings.Split(sidebar, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	st := m.svc.State()
	name := st.UserName
	if name == "" {
		name = "Warrior"
	}
	lvl := engine.UserLevel(st.UserPower)
	tier := engine.TierFor(st.UserPower)
	b := engine.Balance(st)
	return fmt.Sprintf("Dopelganger | %s | Level %d | %s | You %d%% %s %d%% Shadow",
		name, lvl.Level, ui.TierText(string(tier)), b.UserPct, ui.PowerBar(b.UserPct, 20), b.ShadowPct)
}

func (m boardModel) renderMain() string {
	st := m.svc.State()
	dateLabel := st.Viewing
	if st.ViewingToday() {
		dateLabel = "Today"
	}

	out := []string{fmt.Sprintf("Habits — %s", dateLabel)}
	for i, h := range engine.Catalog {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		done := st.IsCompleted(st.Viewing, h.ID)
		streak := engine.HabitStreak(st, h.ID)
		line := fmt.Sprintf("%s%s %s %s (%dp, streak %d)", cursor, ui.CheckIcon(done), h.Icon, h.Name, h.Points, streak)
		if i == m.selected {
			line = ui.SelectedRow.Render(line)
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderSidebar() string {
	st := m.svc.State()
	sum := engine.SummarizeDay(st)
	battle := engine.Battle(st)

	lines := []string{"Daily Summary"}
	lines = append(lines, fmt.Sprintf("- done: %d/%d", sum.Completed, sum.Total))
	if sum.Punishment > 0 {
		lines = append(lines, fmt.Sprintf("- points: %d - %d = %d", sum.BasePoints, sum.Punishment, sum.NetScore))
	} else {
		lines = append(lines, fmt.Sprintf("- points: %d", sum.BasePoints))
	}
	lines = append(lines, fmt.Sprintf("- final: %d", sum.FinalScore))
	lines = append(lines, "")
	lines = append(lines, "Battle")
	lines = append(lines, "- "+battle.Status)
	lines = append(lines, fmt.Sprintf("- you %d%% / shadow %d%%", battle.UserHealth, battle.ShadowHealth))
	lines = append(lines, fmt.Sprintf("- overall streak: %d", engine.OverallStreak(st)))
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- j/k: move")
	lines = append(lines, "- space: toggle")
	lines = append(lines, "- h/l: change day")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
