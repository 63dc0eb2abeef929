package deadline_reminder

import (
	"context"
	"time"

	"delivery-marketplace/pkg/logger"
)

type Service interface {
	SweepApproachingDeadlines(ctx context.Context) (int64, error)
}

type DeadlineReminder struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewDeadlineReminder(log logger.Logger, service Service, interval time.Duration) *DeadlineReminder {
	return &DeadlineReminder{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (d *DeadlineReminder) TTL() time.Duration {
	return d.interval
}

func (d *DeadlineReminder) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, d.interval)
	defer cancel()

	notified, err := d.service.SweepApproachingDeadlines(ctxWithTimeout)

	if notified > 0 {
		DeadlineRemindersSentTotal.Add(float64(notified))
		d.log.With(
			logger.NewField("reminded_deliveries", notified),
		).Info("deadline reminder")
	}

	return err
}

func (d *DeadlineReminder) Info() string {
	return "deadline reminder"
}
