package tui

import (
	"context"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/p119ro/dopelganger/internal/engine"
)

// RunBoard runs the interactive dashboard until the user quits.
func RunBoard(ctx context.Context, svc *engine.Service, pollInterval time.Duration, out io.Writer) error {
	m := newBoardModel(ctx, svc, pollInterval)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
