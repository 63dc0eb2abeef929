package delivery

import "time"

type DeliveryDB struct {
	ID                 int64
	RequesterID        int64
	DeliveryPersonID   *int64
	Title              string
	Description        string
	PickupAddress      string
	PickupLat          *float64
	PickupLng          *float64
	DropoffAddress     string
	DropoffLat         *float64
	DropoffLng         *float64
	PackageWeight      *float64
	PackageDimensions  *string
	PackageFragile     bool
	Images             []string
	AcceptDeadline     time.Time
	DeliveryDeadline   time.Time
	Price              float64
	Status             string
	PaymentStatus      string
	AcceptedAt         *time.Time
	CompletedAt        *time.Time
	CancelledAt        *time.Time
	CancellationReason *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
