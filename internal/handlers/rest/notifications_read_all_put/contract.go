//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notifications_read_all_put_test
package notifications_read_all_put

import (
	"context"

	"delivery-marketplace/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	MarkAllRead(ctx context.Context, userID int64) (int64, error)
}
