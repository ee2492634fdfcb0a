package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equanote/equanote/internal/logger"
	"github.com/equanote/equanote/models"
)

// spySyncEngine counts quick sync calls and records the `since` argument.
// Only PerformQuickSync is callable; the job never touches the rest of the
// engine surface.
type spySyncEngine struct {
	SyncEngine

	calls  atomic.Int64
	err    error
	result models.SyncResult

	mu        sync.Mutex
	lastSince time.Time
}

func (s *spySyncEngine) PerformQuickSync(_ context.Context, lastSync time.Time) (models.SyncResult, error) {
	s.calls.Add(1)
	s.mu.Lock()
	s.lastSince = lastSync
	s.mu.Unlock()
	if s.err != nil {
		return models.SyncResult{}, s.err
	}
	return s.result, nil
}

func (s *spySyncEngine) since() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSince
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestSyncJob_Start_RunsQuickSyncOnTicker(t *testing.T) {
	spy := &spySyncEngine{}
	job := NewSyncJob(spy, logger.Nop())

	// 10ms interval, ~5 ticks over 55ms.
	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "quick sync should have fired several times, got %d", got)
}

func TestSyncJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spySyncEngine{}
	job := NewSyncJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, callsAfterStop, spy.calls.Load(), "no new calls after Stop")
}

func TestSyncJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewSyncJob(&spySyncEngine{}, logger.Nop())
	assert.NotPanics(t, func() { job.Stop() })
}

func TestSyncJob_DoubleStop_NoPanic(t *testing.T) {
	job := NewSyncJob(&spySyncEngine{}, logger.Nop())
	job.Start(context.Background(), 10*time.Millisecond)
	job.Stop()
	assert.NotPanics(t, func() { job.Stop() })
}

func TestSyncJob_Start_DefaultInterval(t *testing.T) {
	spy := &spySyncEngine{}
	job := NewSyncJob(spy, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	// interval <= 0 falls back to 5 minutes, so 20ms sees zero ticks.
	job.Start(ctx, 0)
	time.Sleep(20 * time.Millisecond)
	cancel()
	job.Stop()

	assert.Equal(t, int64(0), spy.calls.Load())
}

func TestSyncJob_Restart_StopsPrevious(t *testing.T) {
	spy := &spySyncEngine{}
	job := NewSyncJob(spy, logger.Nop())
	ctx := context.Background()

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	callsBefore := spy.calls.Load()
	require.Greater(t, callsBefore, int64(0))

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Greater(t, spy.calls.Load(), callsBefore, "the restarted job keeps ticking")
}

func TestSyncJob_ContextCancel_StopsJob(t *testing.T) {
	spy := &spySyncEngine{}
	job := NewSyncJob(spy, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("Stop hung after context cancellation")
	}
}

func TestSyncJob_QuickSyncError_DoesNotStopJob(t *testing.T) {
	spy := &spySyncEngine{err: assert.AnError}
	job := NewSyncJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "errors must not kill the ticker, got %d calls", got)
}

func TestSyncJob_AdvancesLastSyncWatermark(t *testing.T) {
	mark := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	spy := &spySyncEngine{result: models.SyncResult{SyncTimestamp: mark}}
	job := NewSyncJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	require.Greater(t, spy.calls.Load(), int64(1), "need at least two ticks to observe the watermark")
	assert.Equal(t, mark, spy.since(), "the second tick passes the previous result's timestamp")
}
