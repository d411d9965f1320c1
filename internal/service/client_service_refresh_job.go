package service

import (
	"context"
	"sync"
	"time"

	"github.com/mkarev/go-break-ledger/internal/logger"
)

// clientRefreshJob re-derives the display views on a fixed interval so the
// leaderboards stay live while the TUI is open.
type clientRefreshJob struct {
	views    ClientViewsService
	interval time.Duration
	logger   *logger.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	started bool
}

// NewClientRefreshJob constructs the background views refresher. The job does
// nothing until Run is called.
func NewClientRefreshJob(views ClientViewsService, interval time.Duration, log *logger.Logger) ClientRefreshJob {
	return &clientRefreshJob{
		views:    views,
		interval: interval,
		logger:   log,
	}
}

// Run starts the refresh loop in a background goroutine. Calling Run on an
// already started job is a no-op.
func (j *clientRefreshJob) Run() {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.started {
		return
	}
	j.started = true

	ctx, cancel := context.WithCancel(context.Background())
	j.cancel = cancel

	j.wg.Add(1)
	go j.loop(ctx)
}

func (j *clientRefreshJob) loop(ctx context.Context) {
	defer j.wg.Done()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := j.views.Refresh(ctx); err != nil {
				j.logger.Warn().Err(err).Msg("background views refresh failed")
			}
		}
	}
}

// Stop cancels the loop and waits for the in-flight refresh to finish.
func (j *clientRefreshJob) Stop() {
	j.mu.Lock()
	if !j.started {
		j.mu.Unlock()
		return
	}
	j.started = false
	cancel := j.cancel
	j.mu.Unlock()

	cancel()
	j.wg.Wait()
}
