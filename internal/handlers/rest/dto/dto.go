package dto

import "time"

type Location struct {
	Address string   `json:"address"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
}

type Package struct {
	Weight     *float64 `json:"weight,omitempty"`
	Dimensions string   `json:"dimensions,omitempty"`
	Fragile    bool     `json:"fragile"`
}

type CreateDeliveryRequest struct {
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Pickup           Location  `json:"pickup"`
	Dropoff          Location  `json:"dropoff"`
	Package          Package   `json:"package"`
	Images           []string  `json:"images,omitempty"`
	AcceptDeadline   time.Time `json:"accept_deadline"`
	DeliveryDeadline time.Time `json:"delivery_deadline"`
	Price            float64   `json:"price"`
}

type Delivery struct {
	ID                 int64      `json:"id"`
	RequesterID        int64      `json:"requester_id"`
	DeliveryPersonID   *int64     `json:"delivery_person_id,omitempty"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	Pickup             Location   `json:"pickup"`
	Dropoff            Location   `json:"dropoff"`
	Package            Package    `json:"package"`
	Images             []string   `json:"images,omitempty"`
	AcceptDeadline     time.Time  `json:"accept_deadline"`
	DeliveryDeadline   time.Time  `json:"delivery_deadline"`
	Price              float64    `json:"price"`
	Status             string     `json:"status"`
	PaymentStatus      string     `json:"payment_status"`
	AcceptedAt         *time.Time `json:"accepted_at,omitempty"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CancellationReason string     `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type DeliveryPageResponse struct {
	Deliveries []Delivery `json:"deliveries"`
	Total      int64      `json:"total"`
	TotalPages int        `json:"total_pages"`
	Page       int        `json:"page"`
}

type UpdateDeliveryStatusRequest struct {
	Status string `json:"status"`
}

type CancelDeliveryRequest struct {
	Reason string `json:"reason,omitempty"`
}

type Notification struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	Type       string    `json:"type"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	DeliveryID *int64    `json:"delivery_id,omitempty"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"created_at"`
}

type NotificationPageResponse struct {
	Notifications []Notification `json:"notifications"`
	Total         int64          `json:"total"`
	TotalPages    int            `json:"total_pages"`
	Page          int            `json:"page"`
	UnreadCount   int64          `json:"unread_count"`
}

type MarkAllReadResponse struct {
	Marked int64 `json:"marked"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}
