package delivery

import (
	"context"
	"fmt"
	"time"

	"delivery-marketplace/internal/entities"
	"delivery-marketplace/pkg/logger"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100

	// Bounded batches for the background sweeps.
	expiryBatchLimit   = 100
	reminderBatchLimit = 500

	// Lookahead window of the deadline reminder sweep.
	deadlineLookahead = 24 * time.Hour
)

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Delivery owns the lifecycle state machine of delivery requests.
type Delivery struct {
	log        serviceLogger
	repository Repository
	userStats  UserStats
	notifier   Notifier
	clock      Clock
	txManager  TxManager
}

func New(
	log serviceLogger,
	repository Repository,
	userStats UserStats,
	notifier Notifier,
	clock Clock,
	txManager TxManager,
) *Delivery {
	return &Delivery{
		log:        log,
		repository: repository,
		userStats:  userStats,
		notifier:   notifier,
		clock:      clock,
		txManager:  txManager,
	}
}

func (s *Delivery) Create(ctx context.Context, requesterID int64, draft entities.DeliveryDraft) (*entities.Delivery, error) {
	if err := validateDraft(draft, s.clock.Now()); err != nil {
		return nil, err
	}

	created, err := s.repository.Create(ctx, requesterID, draft)
	if err != nil {
		return nil, fmt.Errorf("create delivery: %w", err)
	}
	return created, nil
}

func (s *Delivery) ListAvailable(ctx context.Context, userID int64, filter entities.AvailableFilter) (*entities.DeliveryPage, error) {
	if filter.Page < 1 {
		filter.Page = defaultPage
	}
	if filter.Limit < 1 {
		filter.Limit = defaultLimit
	}
	if filter.Limit > maxLimit {
		filter.Limit = maxLimit
	}

	deliveries, total, err := s.repository.ListAvailable(ctx, userID, s.clock.Now(), filter)
	if err != nil {
		return nil, fmt.Errorf("list available deliveries: %w", err)
	}

	return &entities.DeliveryPage{
		Deliveries: deliveries,
		Total:      total,
		TotalPages: totalPages(total, filter.Limit),
		Page:       filter.Page,
	}, nil
}

func (s *Delivery) GetByID(ctx context.Context, id int64) (*entities.Delivery, error) {
	found, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get delivery: %w", err)
	}
	return found, nil
}

func (s *Delivery) GetMine(ctx context.Context, userID int64, filter entities.MineFilter) ([]entities.Delivery, error) {
	if !isValidMineFilter(filter) {
		return nil, ErrInvalidMineFilter
	}

	deliveries, err := s.repository.ListByParticipant(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("list own deliveries: %w", err)
	}
	return deliveries, nil
}

// Accept runs the precondition chain in order, each failure with its own
// sentinel. The write itself is a conditional update, so two racing acceptors
// cannot both succeed: the loser gets ErrAlreadyTaken.
func (s *Delivery) Accept(ctx context.Context, deliveryID, acceptorID int64) (*entities.Delivery, error) {
	found, err := s.repository.GetByID(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("get delivery: %w", err)
	}

	if found.RequesterID == acceptorID {
		return nil, ErrOwnDelivery
	}

	if found.Status != entities.DeliveryPending {
		return nil, ErrNotPending
	}

	now := s.clock.Now()
	if now.After(found.AcceptDeadline) {
		// Lazy expiry: the status flip persists even though the call fails.
		if expireErr := s.repository.MarkExpiredIfPending(ctx, deliveryID); expireErr != nil {
			s.log.Error("failed to expire delivery on accept",
				logger.NewField("delivery_id", deliveryID),
				logger.NewField("error", expireErr),
			)
		}
		return nil, ErrAcceptDeadlinePassed
	}

	// Conflict check and the conditional accept share one transaction so the
	// schedule snapshot cannot go stale between the two statements.
	var accepted *entities.Delivery
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		// Schedule-overlap heuristic: the acceptor's active deliveries whose
		// delivery deadline falls inside the candidate's accept/delivery window.
		conflicts, err := s.repository.CountScheduleConflicts(ctx, acceptorID, found.AcceptDeadline, found.DeliveryDeadline)
		if err != nil {
			return fmt.Errorf("check schedule conflicts: %w", err)
		}
		if conflicts > 0 {
			return ErrScheduleConflict
		}

		accepted, err = s.repository.AcceptIfPending(ctx, deliveryID, acceptorID, now)
		if err != nil {
			return fmt.Errorf("accept delivery: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.DeliveryAccepted(ctx, accepted)

	return accepted, nil
}

func (s *Delivery) UpdateStatus(ctx context.Context, deliveryID, actorID int64, newStatus entities.DeliveryStatusType) (*entities.Delivery, error) {
	if !isUpdatableStatus(newStatus) {
		return nil, ErrInvalidStatus
	}

	found, err := s.repository.GetByID(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("get delivery: %w", err)
	}

	if found.DeliveryPersonID == nil || *found.DeliveryPersonID != actorID {
		return nil, ErrNotDeliveryPerson
	}

	if !entities.CanTransition(found.Status, newStatus) {
		return nil, ErrInvalidTransition
	}

	now := s.clock.Now()

	if newStatus != entities.DeliveryCompleted {
		updated, err := s.repository.UpdateStatusIf(ctx, deliveryID, found.Status, newStatus, now)
		if err != nil {
			return nil, fmt.Errorf("update delivery status: %w", err)
		}
		return updated, nil
	}

	// Completion flips the status and bumps the fulfiller's counter atomically.
	var completed *entities.Delivery
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		completed, err = s.repository.UpdateStatusIf(ctx, deliveryID, found.Status, newStatus, now)
		if err != nil {
			return fmt.Errorf("update delivery status: %w", err)
		}

		if err := s.userStats.IncrementCompletedDeliveries(ctx, actorID); err != nil {
			return fmt.Errorf("increment completed deliveries: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.DeliveryCompleted(ctx, completed)

	return completed, nil
}

func (s *Delivery) Cancel(ctx context.Context, deliveryID, requesterID int64, reason string) (*entities.Delivery, error) {
	found, err := s.repository.GetByID(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("get delivery: %w", err)
	}

	if found.RequesterID != requesterID {
		return nil, ErrNotRequester
	}

	if found.Status != entities.DeliveryPending {
		return nil, ErrNotPending
	}

	if reason == "" {
		reason = "Cancelled by requester"
	}

	cancelled, err := s.repository.CancelIfPending(ctx, deliveryID, reason, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("cancel delivery: %w", err)
	}
	return cancelled, nil
}

// SweepExpired moves overdue pending deliveries to expired in one bounded
// batch and notifies their requesters. Idempotent: already-expired rows no
// longer match the status filter.
func (s *Delivery) SweepExpired(ctx context.Context) (int64, error) {
	expired, err := s.repository.ExpirePendingBefore(ctx, s.clock.Now(), expiryBatchLimit)
	if err != nil {
		return 0, fmt.Errorf("expire pending deliveries: %w", err)
	}

	for i := range expired {
		s.notifier.RequestExpired(ctx, &expired[i])
	}

	return int64(len(expired)), nil
}

// SweepApproachingDeadlines is purely advisory: no status mutation, and it
// re-notifies on every run while a delivery stays inside the lookahead window.
func (s *Delivery) SweepApproachingDeadlines(ctx context.Context) (int64, error) {
	now := s.clock.Now()

	approaching, err := s.repository.ListApproachingDeadline(ctx, now, now.Add(deadlineLookahead), reminderBatchLimit)
	if err != nil {
		return 0, fmt.Errorf("list approaching deadlines: %w", err)
	}

	for i := range approaching {
		s.notifier.DeadlineApproaching(ctx, &approaching[i])
	}

	return int64(len(approaching)), nil
}

func totalPages(total int64, limit int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
