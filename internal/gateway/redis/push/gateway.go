package push

import (
	"context"
	"encoding/json"
	"fmt"
)

const (
	presenceKeyPattern = "presence:user:%d"
	channelPattern     = "user:%d:notifications"
)

// PushGateway доставляет realtime-уведомления через Redis:
// presence-ключ означает что пользователь онлайн, само сообщение
// уходит в его pub/sub канал.
type PushGateway struct {
	client client
}

func New(client client) *PushGateway {
	return &PushGateway{
		client: client,
	}
}

type envelope struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

func (g *PushGateway) IsOnline(ctx context.Context, userID int64) (bool, error) {
	key := fmt.Sprintf(presenceKeyPattern, userID)

	exists, err := g.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("gateway push, check presence: %w", err)
	}

	return exists > 0, nil
}

func (g *PushGateway) PushToUser(ctx context.Context, userID int64, event string, payload interface{}) error {
	message, err := json.Marshal(envelope{
		Event:   event,
		Payload: payload,
	})
	if err != nil {
		return fmt.Errorf("gateway push, marshal message: %w", err)
	}

	channel := fmt.Sprintf(channelPattern, userID)

	err = g.client.Publish(ctx, channel, message).Err()
	if err != nil {
		PushPublishTotal.WithLabelValues(event, "error").Inc()
		return fmt.Errorf("gateway push, publish: %w", err)
	}

	PushPublishTotal.WithLabelValues(event, "ok").Inc()
	return nil
}
