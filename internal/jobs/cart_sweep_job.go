package jobs

import (
	"context"
	"time"

	"jinbbq/internal/core/ports"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultCartSweepSchedule runs the sweep at the top of every minute.
const DefaultCartSweepSchedule = "0 * * * * *"

// CartSweepJob drops cart sessions that have been idle longer than the TTL.
type CartSweepJob struct {
	carts    ports.CartStore
	ttl      time.Duration
	schedule string
	now      func() time.Time
	cron     *cron.Cron
	logger   *zap.SugaredLogger
}

// NewCartSweepJob creates the sweep. schedule is a six-field cron expression
// (seconds first) or a descriptor such as "@every 30s".
func NewCartSweepJob(carts ports.CartStore, ttl time.Duration, schedule string, logger *zap.SugaredLogger) *CartSweepJob {
	if schedule == "" {
		schedule = DefaultCartSweepSchedule
	}
	return &CartSweepJob{
		carts:    carts,
		ttl:      ttl,
		schedule: schedule,
		now:      time.Now,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "cart_sweep_job"),
	}
}

func (j *CartSweepJob) Name() string { return "cart sweep" }

// Start registers the sweep and starts the scheduler.
func (j *CartSweepJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Infow("Cart sweep job started", "schedule", j.schedule, "ttl", j.ttl)
	return nil
}

// Run performs a single sweep.
func (j *CartSweepJob) Run(ctx context.Context) {
	evicted, err := j.carts.Evict(ctx, j.now().Add(-j.ttl))
	if err != nil {
		j.logger.Errorw("Cart sweep failed", "error", err)
		return
	}
	if evicted > 0 {
		j.logger.Debugw("Evicted idle carts", "count", evicted)
	}
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (j *CartSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Cart sweep job stopped")
}
