package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
)

type contactSyncJob struct {
	syncService ContactSyncService
	interval    time.Duration
	logger      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewContactSyncJob creates a job that calls syncService.SyncAll every
// interval. If interval is zero or negative it defaults to 5 minutes. The job
// is idle until Start is called.
func NewContactSyncJob(syncService ContactSyncService, interval time.Duration, logger *logger.Logger) ContactSyncJob {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &contactSyncJob{
		syncService: syncService,
		interval:    interval,
		logger:      logger,
	}
}

func (j *contactSyncJob) Interval() time.Duration {
	return j.interval
}

// Start implements ContactSyncJob.
func (j *contactSyncJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx)
			}
		}
	}()
}

// tick runs one pass on the job goroutine. Passes never overlap: the ticker
// drops ticks that fire while a pass is running.
func (j *contactSyncJob) tick(ctx context.Context) {
	report, err := j.syncService.SyncAll(ctx)
	switch {
	case err == nil:
		j.logger.Debug().Int("succeeded", report.Succeeded).Msg("background sync converged")
	case errors.Is(err, ErrNoIdentity):
		j.logger.Debug().Msg("background sync skipped: not enrolled")
	case errors.Is(err, ErrSyncIncomplete):
		j.logger.Warn().Int("succeeded", report.Succeeded).Int("failed", report.Failed).Msg("background sync incomplete")
	default:
		j.logger.Error().Err(err).Msg("background sync aborted")
	}
}

// Stop implements ContactSyncJob. Safe to call when the job is not running.
func (j *contactSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
