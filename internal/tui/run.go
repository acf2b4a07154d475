package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yaklabco/jpglitch/pkg/buffer"
)

// Run opens the editor full screen over buf and blocks until the user quits or
// ctx is cancelled.
func Run(ctx context.Context, buf *buffer.Buffer, opts Options) error {
	if buf.Current() == nil {
		return buffer.ErrNotLoaded
	}

	model := New(ctx, buf, opts)
	defer model.Close()

	program := tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return fmt.Errorf("editor cancelled: %w", ctx.Err())
		}
		return fmt.Errorf("run editor: %w", err)
	}

	return nil
}
