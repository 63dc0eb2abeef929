//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_post_test
package delivery_post

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
	Create(ctx context.Context, requesterID int64, draft entities.DeliveryDraft) (*entities.Delivery, error)
}
