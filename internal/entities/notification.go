package entities

import "time"

type Notification struct {
	ID         int64
	UserID     int64
	Type       NotificationType
	Title      string
	Message    string
	DeliveryID *int64
	Read       bool
	CreatedAt  time.Time
}

type NotificationType string

const (
	NotificationDeliveryAccepted    NotificationType = "delivery_accepted"
	NotificationDeliveryCompleted   NotificationType = "delivery_completed"
	NotificationPaymentReceived     NotificationType = "payment_received"
	NotificationDeadlineApproaching NotificationType = "deadline_approaching"
	NotificationRequestExpired      NotificationType = "request_expired"
)

func (t NotificationType) String() string {
	return string(t)
}

// NotificationDraft is what lifecycle transitions hand to the dispatcher.
type NotificationDraft struct {
	UserID     int64
	Type       NotificationType
	Title      string
	Message    string
	DeliveryID *int64
}

type NotificationFilter struct {
	Read  *bool
	Page  int
	Limit int
}

type NotificationPage struct {
	Notifications []Notification
	Total         int64
	TotalPages    int
	Page          int
	UnreadCount   int64
}
