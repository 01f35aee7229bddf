package jobs

import (
	"context"
	"log/slog"
	"time"

	"eats/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultPromotionSweepSchedule runs the sweep at the top of every minute.
const DefaultPromotionSweepSchedule = "0 * * * * *"

type promotionExpirer interface {
	Handle(ctx context.Context, cmd commands.ExpirePromotionsCommand) (int, error)
}

// PromotionExpiryJob clears restaurant promotions whose paid period is over.
type PromotionExpiryJob struct {
	handler  promotionExpirer
	schedule string
	cron     *cron.Cron
	now      func() time.Time
	logger   *slog.Logger
}

// NewPromotionExpiryJob builds the job. schedule is a six-field cron
// expression (with seconds); an empty one means DefaultPromotionSweepSchedule.
func NewPromotionExpiryJob(handler promotionExpirer, schedule string, logger *slog.Logger) *PromotionExpiryJob {
	if schedule == "" {
		schedule = DefaultPromotionSweepSchedule
	}
	return &PromotionExpiryJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		now:      time.Now,
		logger:   logger.With("component", "promotion_expiry_job"),
	}
}

// Start registers the sweep and starts the scheduler.
func (j *PromotionExpiryJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Promotion expiry job started", "schedule", j.schedule)
	return nil
}

// Run performs one sweep. Failures are logged and retried on the next tick.
func (j *PromotionExpiryJob) Run(ctx context.Context) {
	cmd, err := commands.NewExpirePromotionsCommand(j.now())
	if err != nil {
		j.logger.ErrorContext(ctx, "Promotion expiry job failed", "error", err)
		return
	}

	expired, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Promotion expiry job failed", "error", err)
		return
	}
	if expired > 0 {
		j.logger.InfoContext(ctx, "Promotions expired", "count", expired)
	}
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (j *PromotionExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Promotion expiry job stopped")
}
