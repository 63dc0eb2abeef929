//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=deliveries_available_get_test
package deliveries_available_get

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
	ListAvailable(ctx context.Context, userID int64, filter entities.AvailableFilter) (*entities.DeliveryPage, error)
}
