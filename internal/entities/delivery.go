package entities

import "time"

type Delivery struct {
	ID                 int64
	RequesterID        int64
	DeliveryPersonID   *int64
	Title              string
	Description        string
	Pickup             Location
	Dropoff            Location
	Package            PackageDetails
	Images             []string
	AcceptDeadline     time.Time
	DeliveryDeadline   time.Time
	Price              float64
	Status             DeliveryStatusType
	PaymentStatus      PaymentStatusType
	AcceptedAt         *time.Time
	CompletedAt        *time.Time
	CancelledAt        *time.Time
	CancellationReason string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type Location struct {
	Address string
	Lat     *float64
	Lng     *float64
}

type PackageDetails struct {
	Weight     *float64
	Dimensions string
	Fragile    bool
}

type DeliveryStatusType string

const (
	DeliveryPending    DeliveryStatusType = "pending"
	DeliveryAccepted   DeliveryStatusType = "accepted"
	DeliveryInProgress DeliveryStatusType = "in_progress"
	DeliveryCompleted  DeliveryStatusType = "completed"
	DeliveryCancelled  DeliveryStatusType = "cancelled"
	DeliveryExpired    DeliveryStatusType = "expired"
)

func (s DeliveryStatusType) String() string {
	return string(s)
}

func (s DeliveryStatusType) IsTerminal() bool {
	switch s {
	case DeliveryCompleted, DeliveryCancelled, DeliveryExpired:
		return true
	default:
		return false
	}
}

// Transitions the assigned delivery person may drive. Cancellation and expiry
// leave pending through their own operations and are not listed here.
var progressTransitions = map[DeliveryStatusType]DeliveryStatusType{
	DeliveryAccepted:   DeliveryInProgress,
	DeliveryInProgress: DeliveryCompleted,
}

func CanTransition(from, to DeliveryStatusType) bool {
	next, ok := progressTransitions[from]
	return ok && next == to
}

type PaymentStatusType string

const (
	PaymentPending  PaymentStatusType = "pending"
	PaymentPaid     PaymentStatusType = "paid"
	PaymentRefunded PaymentStatusType = "refunded"
)

func (s PaymentStatusType) String() string {
	return string(s)
}

// DeliveryDraft carries the requester-supplied fields of a new delivery.
type DeliveryDraft struct {
	Title            string
	Description      string
	Pickup           Location
	Dropoff          Location
	Package          PackageDetails
	Images           []string
	AcceptDeadline   time.Time
	DeliveryDeadline time.Time
	Price            float64
}

// AvailableFilter narrows the board of open deliveries.
type AvailableFilter struct {
	Search   string
	MinPrice *float64
	MaxPrice *float64
	Page     int
	Limit    int
}

type DeliveryPage struct {
	Deliveries []Delivery
	Total      int64
	TotalPages int
	Page       int
}

// MineFilter selects deliveries by the caller's role in them.
type MineFilter string

const (
	MineAll        MineFilter = ""
	MineRequested  MineFilter = "requested"
	MineDelivering MineFilter = "delivering"
)
