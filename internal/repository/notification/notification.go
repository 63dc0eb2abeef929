package notification

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"delivery-marketplace/internal/entities"
	notificationservice "delivery-marketplace/internal/service/notification"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const notificationColumns = `id, user_id, type, title, message, delivery_id, read, created_at`

var selectColumns = []string{
	"id", "user_id", "type", "title", "message", "delivery_id", "read", "created_at",
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, draft entities.NotificationDraft) (*entities.Notification, error) {
	query := `
		INSERT INTO notifications (user_id, type, title, message, delivery_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + notificationColumns

	notificationDB, err := scanNotification(r.querier.QueryRow(
		ctx,
		query,
		draft.UserID,
		draft.Type.String(),
		draft.Title,
		draft.Message,
		draft.DeliveryID,
	))
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository create error: %w", err)
	}

	return ToDomain(notificationDB), nil
}

func (r *Repository) ListByUser(ctx context.Context, userID int64, filter entities.NotificationFilter) ([]entities.Notification, int64, error) {
	conditions := sq.And{sq.Eq{"user_id": userID}}
	if filter.Read != nil {
		conditions = append(conditions, sq.Eq{"read": *filter.Read})
	}

	countQuery, countArgs, err := qb.
		Select("COUNT(*)").
		From("notifications").
		Where(conditions).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int64
	if err := r.querier.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("unexpected notification repository count error: %w", err)
	}

	offset := uint64(filter.Page-1) * uint64(filter.Limit)

	query, args, err := qb.
		Select(selectColumns...).
		From("notifications").
		Where(conditions).
		OrderBy("created_at DESC").
		Limit(uint64(filter.Limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected notification repository query error: %w", err)
	}
	defer rows.Close()

	var models []NotificationDB
	for rows.Next() {
		notificationDB, err := scanNotification(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("unexpected notification repository scan error: %w", err)
		}
		models = append(models, *notificationDB)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("unexpected notification repository rows error: %w", err)
	}

	return ToDomainList(models), total, nil
}

func (r *Repository) CountUnread(ctx context.Context, userID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND read = FALSE`

	var count int64
	if err := r.querier.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("unexpected notification repository unread count error: %w", err)
	}

	return count, nil
}

func (r *Repository) MarkRead(ctx context.Context, id, userID int64) (*entities.Notification, error) {
	query := `
		UPDATE notifications
		SET read = TRUE
		WHERE id = $1 AND user_id = $2
		RETURNING ` + notificationColumns

	notificationDB, err := scanNotification(r.querier.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notificationservice.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("unexpected notification repository mark read error: %w", err)
	}

	return ToDomain(notificationDB), nil
}

func (r *Repository) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	query := `UPDATE notifications SET read = TRUE WHERE user_id = $1 AND read = FALSE`

	tag, err := r.querier.Exec(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("unexpected notification repository mark all read error: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *Repository) Delete(ctx context.Context, id, userID int64) error {
	query := `DELETE FROM notifications WHERE id = $1 AND user_id = $2`

	tag, err := r.querier.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("unexpected notification repository delete error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notificationservice.ErrNotificationNotFound
	}

	return nil
}

func scanNotification(row pgx.Row) (*NotificationDB, error) {
	var n NotificationDB
	err := row.Scan(
		&n.ID,
		&n.UserID,
		&n.Type,
		&n.Title,
		&n.Message,
		&n.DeliveryID,
		&n.Read,
		&n.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
