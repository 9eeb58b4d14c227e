package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/planszokwariat/ERGONOMIA7/internal/engine"
)

// RunAudit opens the interactive audit checklist.
func RunAudit(ctx context.Context, svc *engine.Service, out io.Writer) error {
	m := newAuditModel(ctx, svc)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
