package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
)

const defaultSyncInterval = 5 * time.Minute

type userSyncJob struct {
	syncService SyncService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewUserSyncJob creates a job that calls syncService.Reconcile on a ticker.
// The job is idle until Start is called.
func NewUserSyncJob(syncService SyncService, logger *logger.Logger) UserSyncJob {
	return &userSyncJob{syncService: syncService, logger: logger}
}

// Start stops any running job, runs one reconciliation immediately and then
// one every interval until ctx is cancelled or Stop is called. A
// non-positive interval defaults to five minutes.
func (j *userSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
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

		j.run(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.run(jobCtx)
			}
		}
	}()
}

func (j *userSyncJob) run(ctx context.Context) {
	if _, err := j.syncService.Reconcile(ctx); err != nil && ctx.Err() == nil {
		j.logger.Err(err).Str("func", "*userSyncJob.run").Msg("user reconciliation failed")
	}
}

// Stop cancels the background goroutine and waits for it to exit. It is a
// no-op when the job is not running.
func (j *userSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
