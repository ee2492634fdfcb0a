package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/equanote/equanote/internal/logger"
	"github.com/equanote/equanote/internal/service"
	"github.com/equanote/equanote/internal/store"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services *service.ClientServices
}

func New(services *service.ClientServices, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services}, nil
}

// Run drives the whole client session: restore or establish a user, then run
// the main screen until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	if _, err := t.services.Users.RestoreSession(ctx); err != nil {
		if !errors.Is(err, store.ErrNoUserLoggedIn) {
			return err
		}
		if err := t.loginFlow(ctx); err != nil {
			return err
		}
	}

	return t.mainLoop(ctx)
}

func (t *TUI) loginFlow(ctx context.Context) error {
	finalModel, err := tea.NewProgram(newLoginModel(ctx, t.services.Users), tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(loginModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quit || !result.done {
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) mainLoop(ctx context.Context) error {
	p := tea.NewProgram(newSyncScreenModel(ctx, t.services), tea.WithAltScreen())

	// Coordinator state changes flow into the program as messages.
	t.services.Coordinator.SetListener(func(state service.SyncState) {
		p.Send(syncStateMsg{state: state})
	})
	defer t.services.Coordinator.SetListener(nil)

	_, err := p.Run()
	return err
}
