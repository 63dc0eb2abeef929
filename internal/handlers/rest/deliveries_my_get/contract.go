//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=deliveries_my_get_test
package deliveries_my_get

import (
	"context"

	"delivery-marketplace/internal/entities"
	"delivery-marketplace/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetMine(ctx context.Context, userID int64, filter entities.MineFilter) ([]entities.Delivery, error)
}
