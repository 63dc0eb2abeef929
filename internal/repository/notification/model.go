package notification

import "time"

type NotificationDB struct {
	ID         int64
	UserID     int64
	Type       string
	Title      string
	Message    string
	DeliveryID *int64
	Read       bool
	CreatedAt  time.Time
}
