package expiry_sweep

import (
	"context"
	"time"

	"delivery-marketplace/pkg/logger"
)

type Service interface {
	SweepExpired(ctx context.Context) (int64, error)
}

type ExpirySweep struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewExpirySweep(log logger.Logger, service Service, interval time.Duration) *ExpirySweep {
	return &ExpirySweep{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (e *ExpirySweep) TTL() time.Duration {
	return e.interval
}

func (e *ExpirySweep) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, e.interval)
	defer cancel()

	expired, err := e.service.SweepExpired(ctxWithTimeout)

	if expired > 0 {
		DeliveriesExpiredTotal.Add(float64(expired))
		e.log.With(
			logger.NewField("expired_deliveries", expired),
		).Info("expiry sweep")
	}

	return err
}

func (e *ExpirySweep) Info() string {
	return "expiry sweep"
}
