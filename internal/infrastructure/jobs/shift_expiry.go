package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
	"safe-rescue.backend/pkg/logger"
)

// shiftExpiryRepo is the slice of TeamRepository the job needs.
type shiftExpiryRepo interface {
	ListActiveWithExpiredShift(ctx context.Context, now time.Time, limit int) ([]uint, error)
	Deactivate(ctx context.Context, ids []uint) error
}

// ShiftExpiryJob periodically deactivates teams whose assigned shift has
// ended. Deactivation only flips the is_active flag; the team and its roster
// stay intact for reassignment to a new shift.
type ShiftExpiryJob struct {
	repo      shiftExpiryRepo
	interval  time.Duration
	batchSize int
	stop      chan struct{}
}

func NewShiftExpiryJob(repo shiftExpiryRepo, interval time.Duration, batchSize int) *ShiftExpiryJob {
	return &ShiftExpiryJob{
		repo:      repo,
		interval:  interval,
		batchSize: batchSize,
		stop:      make(chan struct{}),
	}
}

func (j *ShiftExpiryJob) Start(ctx context.Context) {
	logger.Info(ctx, "starting shift expiry job", zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "shift expiry job stopped (context cancelled)")
			return
		case <-j.stop:
			logger.Info(ctx, "shift expiry job stopped")
			return
		case <-ticker.C:
			j.processExpiredShifts(ctx)
		}
	}
}

func (j *ShiftExpiryJob) Stop() {
	close(j.stop)
}

func (j *ShiftExpiryJob) processExpiredShifts(ctx context.Context) {
	ids, err := j.repo.ListActiveWithExpiredShift(ctx, time.Now(), j.batchSize)
	if err != nil {
		logger.Error(ctx, "fetching teams with expired shifts", zap.Error(err))
		return
	}

	if len(ids) == 0 {
		return
	}

	if err := j.repo.Deactivate(ctx, ids); err != nil {
		logger.Error(ctx, "deactivating teams", zap.Error(err))
		return
	}

	logger.Info(ctx, "deactivated teams with expired shifts", zap.Int("count", len(ids)))
}
