//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"
	"time"

	"delivery-marketplace/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, requesterID int64, draft entities.DeliveryDraft) (*entities.Delivery, error)
	GetByID(ctx context.Context, id int64) (*entities.Delivery, error)
	ListAvailable(ctx context.Context, excludeUserID int64, now time.Time, filter entities.AvailableFilter) ([]entities.Delivery, int64, error)
	ListByParticipant(ctx context.Context, userID int64, filter entities.MineFilter) ([]entities.Delivery, error)

	// AcceptIfPending assigns the acceptor and moves the row to accepted only
	// if it is still pending. Zero affected rows map to ErrAlreadyTaken.
	AcceptIfPending(ctx context.Context, id, acceptorID int64, at time.Time) (*entities.Delivery, error)
	CountScheduleConflicts(ctx context.Context, acceptorID int64, from, to time.Time) (int64, error)

	// UpdateStatusIf moves the row from one status to the next only if it still
	// holds the expected current status. Zero affected rows map to
	// ErrInvalidTransition.
	UpdateStatusIf(ctx context.Context, id int64, from, to entities.DeliveryStatusType, at time.Time) (*entities.Delivery, error)
	CancelIfPending(ctx context.Context, id int64, reason string, at time.Time) (*entities.Delivery, error)
	MarkExpiredIfPending(ctx context.Context, id int64) error

	ExpirePendingBefore(ctx context.Context, before time.Time, limit int) ([]entities.Delivery, error)
	ListApproachingDeadline(ctx context.Context, from, to time.Time, limit int) ([]entities.Delivery, error)
}

type UserStats interface {
	IncrementCompletedDeliveries(ctx context.Context, userID int64) error
}

// Notifier is fire-and-forget: implementations log failures internally and
// never surface them to the lifecycle operation that triggered them.
type Notifier interface {
	DeliveryAccepted(ctx context.Context, d *entities.Delivery)
	DeliveryCompleted(ctx context.Context, d *entities.Delivery)
	RequestExpired(ctx context.Context, d *entities.Delivery)
	DeadlineApproaching(ctx context.Context, d *entities.Delivery)
}

type Clock interface {
	Now() time.Time
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
