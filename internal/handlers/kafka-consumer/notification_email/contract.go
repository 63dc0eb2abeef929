package notification_email

import (
	notificationservice "delivery-marketplace/internal/service/notification"
	"delivery-marketplace/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Sender interface {
	Send(event notificationservice.NotificationEvent) error
}
