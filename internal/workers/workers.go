package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/service"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	return &Workers{workers: workers, logger: logger}
}

// Run starts every worker in order.
func (w *Workers) Run(ctx context.Context) {
	w.logger.Info().Int("count", len(w.workers)).Msg("starting background workers")
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
	w.logger.Info().Msg("background workers stopped")
}

// userSync adapts service.UserSyncJob to Worker with a fixed interval.
type userSync struct {
	job      service.UserSyncJob
	interval time.Duration
}

// NewUserSync runs job every interval.
func NewUserSync(job service.UserSyncJob, interval time.Duration) Worker {
	return &userSync{job: job, interval: interval}
}

func (u *userSync) Start(ctx context.Context) {
	u.job.Start(ctx, u.interval)
}

func (u *userSync) Stop() {
	u.job.Stop()
}
