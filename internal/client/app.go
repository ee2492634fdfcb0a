package client

import (
	"context"
	"errors"

	"github.com/equanote/equanote/internal/config"
	"github.com/equanote/equanote/internal/logger"
	"github.com/equanote/equanote/internal/service"
	"github.com/equanote/equanote/internal/tui"
	"github.com/equanote/equanote/internal/workers"
)

type App struct {
	services *service.ClientServices
	ui       *tui.TUI
	workers  config.ClientWorkers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, workersCfg config.ClientWorkers, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app: services and ui are required")
	}
	return &App{services: services, ui: ui, workers: workersCfg, logger: log}, nil
}

// Run implements [Client]. It starts the periodic incremental pull and runs
// the UI until the user quits. A guest session simply never produces remote
// calls; the background job stays idle in that case.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	job := service.NewSyncJob(a.services.Engine, a.logger.GetChildLogger("sync job"))
	defer job.Stop()

	workerSet := workers.NewWorkers(
		workers.NewQuickSyncWorker(ctx, job, a.workers.SyncInterval),
	)
	workerSet.Run()

	if err := a.ui.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return err
	}
	return nil
}
