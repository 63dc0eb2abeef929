//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_get_test
package delivery_get

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
	GetByID(ctx context.Context, id int64) (*entities.Delivery, error)
}
