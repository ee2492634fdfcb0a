package workers

import (
	"context"
	"time"

	"github.com/equanote/equanote/internal/service"
)

// quickSyncWorker starts the periodic incremental pull when the worker set
// runs. Stopping is handled by cancelling ctx.
type quickSyncWorker struct {
	ctx      context.Context
	job      service.SyncJob
	interval time.Duration
}

func NewQuickSyncWorker(ctx context.Context, job service.SyncJob, interval time.Duration) Worker {
	return &quickSyncWorker{ctx: ctx, job: job, interval: interval}
}

func (w *quickSyncWorker) Run() {
	w.job.Start(w.ctx, w.interval)
}
