package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/IBM/sarama"

	notificationservice "delivery-marketplace/internal/service/notification"
)

// EventGateway публикует события уведомлений в Kafka.
// Ключ — user_id, чтобы события одного пользователя шли по порядку.
type EventGateway struct {
	producer producer
	topic    string
}

func New(producer producer, topic string) *EventGateway {
	return &EventGateway{
		producer: producer,
		topic:    topic,
	}
}

func (g *EventGateway) Publish(ctx context.Context, event notificationservice.NotificationEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("gateway events, publish: %w", err)
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("gateway events, marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: g.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(event.UserID, 10)),
		Value: sarama.ByteEncoder(value),
	}

	_, _, err = g.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("gateway events, send message: %w", err)
	}

	return nil
}
