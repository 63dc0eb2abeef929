package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"delivery-marketplace/internal/entities"
	"delivery-marketplace/pkg/logger"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100

	pushEventName = "notification"
)

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Service persists notifications, pushes them to online users and publishes
// email events. Dispatch is best-effort by contract: lifecycle transitions
// commit regardless of what happens here.
type Service struct {
	log    serviceLogger
	repo   Repository
	users  UserDirectory
	push   PushGateway
	events EventPublisher
}

func New(
	log serviceLogger,
	repo Repository,
	users UserDirectory,
	push PushGateway,
	events EventPublisher,
) *Service {
	return &Service{
		log:    log,
		repo:   repo,
		users:  users,
		push:   push,
		events: events,
	}
}

func (s *Service) DeliveryAccepted(ctx context.Context, d *entities.Delivery) {
	s.dispatch(ctx, entities.NotificationDraft{
		UserID:     d.RequesterID,
		Type:       entities.NotificationDeliveryAccepted,
		Title:      "Delivery Accepted",
		Message:    fmt.Sprintf("Your delivery request %q has been accepted", d.Title),
		DeliveryID: &d.ID,
	}, d, true)
}

func (s *Service) DeliveryCompleted(ctx context.Context, d *entities.Delivery) {
	s.dispatch(ctx, entities.NotificationDraft{
		UserID:     d.RequesterID,
		Type:       entities.NotificationDeliveryCompleted,
		Title:      "Delivery Completed",
		Message:    fmt.Sprintf("Your delivery %q has been completed", d.Title),
		DeliveryID: &d.ID,
	}, d, true)
}

func (s *Service) RequestExpired(ctx context.Context, d *entities.Delivery) {
	s.dispatch(ctx, entities.NotificationDraft{
		UserID:     d.RequesterID,
		Type:       entities.NotificationRequestExpired,
		Title:      "Delivery Request Expired",
		Message:    fmt.Sprintf("Your delivery request %q has expired as no one accepted it within the deadline", d.Title),
		DeliveryID: &d.ID,
	}, d, false)
}

func (s *Service) DeadlineApproaching(ctx context.Context, d *entities.Delivery) {
	s.dispatch(ctx, entities.NotificationDraft{
		UserID:     d.RequesterID,
		Type:       entities.NotificationDeadlineApproaching,
		Title:      "Delivery Deadline Approaching",
		Message:    fmt.Sprintf("Your delivery %q is expected within 24 hours", d.Title),
		DeliveryID: &d.ID,
	}, d, false)

	if d.DeliveryPersonID != nil {
		s.dispatch(ctx, entities.NotificationDraft{
			UserID:     *d.DeliveryPersonID,
			Type:       entities.NotificationDeadlineApproaching,
			Title:      "Delivery Deadline Approaching",
			Message:    fmt.Sprintf("The delivery %q is due within 24 hours", d.Title),
			DeliveryID: &d.ID,
		}, d, false)
	}
}

func (s *Service) dispatch(ctx context.Context, draft entities.NotificationDraft, d *entities.Delivery, withEmail bool) {
	dispatchLog := s.log.With(
		logger.NewField("user_id", draft.UserID),
		logger.NewField("type", draft.Type.String()),
	)

	created, err := s.repo.Create(ctx, draft)
	if err != nil {
		dispatchLog.Error("failed to persist notification",
			logger.NewField("error", err),
		)
		return
	}

	s.pushRealtime(ctx, dispatchLog, created)

	if withEmail {
		s.publishEmailEvent(ctx, dispatchLog, created, d)
	}
}

func (s *Service) pushRealtime(ctx context.Context, log logger.Logger, n *entities.Notification) {
	online, err := s.push.IsOnline(ctx, n.UserID)
	if err != nil {
		log.Warn("failed to check user presence",
			logger.NewField("error", err),
		)
		return
	}
	if !online {
		return
	}

	if err := s.push.PushToUser(ctx, n.UserID, pushEventName, n); err != nil {
		log.Warn("failed to push notification",
			logger.NewField("error", err),
		)
	}
}

func (s *Service) publishEmailEvent(ctx context.Context, log logger.Logger, n *entities.Notification, d *entities.Delivery) {
	user, err := s.users.GetByID(ctx, n.UserID)
	if err != nil {
		log.Warn("failed to resolve notification recipient",
			logger.NewField("error", err),
		)
		return
	}

	event := NotificationEvent{
		EventID:          uuid.NewString(),
		UserID:           user.ID,
		UserName:         user.Name,
		UserEmail:        user.Email,
		Type:             n.Type.String(),
		Title:            n.Title,
		Message:          n.Message,
		DeliveryID:       n.DeliveryID,
		DeliveryTitle:    d.Title,
		PickupAddress:    d.Pickup.Address,
		DropoffAddress:   d.Dropoff.Address,
		DeliveryDeadline: d.DeliveryDeadline,
		OccurredAt:       n.CreatedAt,
	}

	if err := s.events.Publish(ctx, event); err != nil {
		log.Warn("failed to publish notification event",
			logger.NewField("error", err),
		)
	}
}

func (s *Service) List(ctx context.Context, userID int64, filter entities.NotificationFilter) (*entities.NotificationPage, error) {
	if filter.Page < 1 {
		filter.Page = defaultPage
	}
	if filter.Limit < 1 {
		filter.Limit = defaultLimit
	}
	if filter.Limit > maxLimit {
		filter.Limit = maxLimit
	}

	notifications, total, err := s.repo.ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count unread notifications: %w", err)
	}

	return &entities.NotificationPage{
		Notifications: notifications,
		Total:         total,
		TotalPages:    totalPages(total, filter.Limit),
		Page:          filter.Page,
		UnreadCount:   unread,
	}, nil
}

func (s *Service) MarkRead(ctx context.Context, id, userID int64) (*entities.Notification, error) {
	marked, err := s.repo.MarkRead(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("mark notification read: %w", err)
	}
	return marked, nil
}

func (s *Service) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	marked, err := s.repo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}
	return marked, nil
}

func (s *Service) Delete(ctx context.Context, id, userID int64) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	return nil
}

func totalPages(total int64, limit int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
