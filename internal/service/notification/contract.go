//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"
	"time"

	"delivery-marketplace/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, draft entities.NotificationDraft) (*entities.Notification, error)
	ListByUser(ctx context.Context, userID int64, filter entities.NotificationFilter) ([]entities.Notification, int64, error)
	CountUnread(ctx context.Context, userID int64) (int64, error)
	MarkRead(ctx context.Context, id, userID int64) (*entities.Notification, error)
	MarkAllRead(ctx context.Context, userID int64) (int64, error)
	Delete(ctx context.Context, id, userID int64) error
}

type UserDirectory interface {
	GetByID(ctx context.Context, id int64) (*entities.User, error)
}

// PushGateway is the injected realtime capability: the lifecycle code never
// touches connection state directly.
type PushGateway interface {
	IsOnline(ctx context.Context, userID int64) (bool, error)
	PushToUser(ctx context.Context, userID int64, event string, payload interface{}) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event NotificationEvent) error
}

// NotificationEvent is the payload published for the email worker.
type NotificationEvent struct {
	EventID          string    `json:"event_id"`
	UserID           int64     `json:"user_id"`
	UserName         string    `json:"user_name"`
	UserEmail        string    `json:"user_email"`
	Type             string    `json:"type"`
	Title            string    `json:"title"`
	Message          string    `json:"message"`
	DeliveryID       *int64    `json:"delivery_id,omitempty"`
	DeliveryTitle    string    `json:"delivery_title,omitempty"`
	PickupAddress    string    `json:"pickup_address,omitempty"`
	DropoffAddress   string    `json:"dropoff_address,omitempty"`
	DeliveryDeadline time.Time `json:"delivery_deadline,omitempty"`
	OccurredAt       time.Time `json:"occurred_at"`
}
