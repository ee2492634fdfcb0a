package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/equanote/equanote/internal/logger"
)

type syncJob struct {
	engine SyncEngine
	logger *logger.Logger

	mu       sync.Mutex
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	lastSync time.Time
}

// NewSyncJob creates a syncJob that runs a quick sync on a ticker. The job is
// idle until Start is called.
func NewSyncJob(engine SyncEngine, logger *logger.Logger) SyncJob {
	return &syncJob{engine: engine, logger: logger}
}

// Start implements SyncJob. It stops any previously running job, then
// launches a background goroutine that pulls recent remote changes every
// interval. If interval is zero or negative it defaults to 5 minutes. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *syncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.runOnce(jobCtx)
			}
		}
	}()
}

// Stop implements SyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is
// not running (no-op in that case).
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *syncJob) runOnce(ctx context.Context) {
	j.mu.Lock()
	since := j.lastSync
	j.mu.Unlock()

	result, err := j.engine.PerformQuickSync(ctx, since)
	if err != nil {
		// No session means the user is offline or a guest; wait for the
		// next tick instead of spamming the log.
		if !errors.Is(err, ErrNoUserLoggedIn) && !errors.Is(err, context.Canceled) {
			j.logger.Err(err).Msg("quick sync failed")
		}
		return
	}

	j.mu.Lock()
	j.lastSync = result.SyncTimestamp
	j.mu.Unlock()

	j.logger.Debug().
		Int("books", len(result.DownloadedBooks)).
		Int("formulas", len(result.DownloadedFormulas)).
		Msg("quick sync completed")
}
