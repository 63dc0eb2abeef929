package notification_email

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	notificationservice "delivery-marketplace/internal/service/notification"
	"delivery-marketplace/pkg/logger"
)

type Handler struct {
	sender                   Sender
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, sender Sender, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		sender:                   sender,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("notification.dispatched: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("notification.dispatched: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event notificationservice.NotificationEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("notification.dispatched handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("event", event.EventID),
		logger.NewField("user", event.UserID),
		logger.NewField("type", event.Type),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("notification.dispatched processing")

	if event.UserEmail == "" {
		msgLog.Warn("notification.dispatched handler event without recipient email")
		sess.MarkMessage(message, "")
		return false
	}

	err = h.sendWithContext(ctx, event)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("notification.dispatched handler context cancelled, message will be reprocessed")
			return true

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("notification.dispatched handler failed to send email")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("notification.dispatched: email sent")

	sess.MarkMessage(message, "")
	return false
}

// net/smtp не принимает контекст, поэтому отправку гоняем в горутине
// и ждем либо результат, либо таймаут.
func (h *Handler) sendWithContext(ctx context.Context, event notificationservice.NotificationEvent) error {
	done := make(chan error, 1)

	go func() {
		done <- h.sender.Send(event)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
