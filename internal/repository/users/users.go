package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"delivery-marketplace/internal/entities"
	notificationservice "delivery-marketplace/internal/service/notification"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	query := `
		SELECT id, name, email, completed_deliveries, created_at
		FROM users
		WHERE id = $1
	`

	var u UserDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.CompletedDeliveries,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notificationservice.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected users repository get error: %w", err)
	}

	return ToDomain(&u), nil
}

func (r *Repository) IncrementCompletedDeliveries(ctx context.Context, id int64) error {
	query := `UPDATE users SET completed_deliveries = completed_deliveries + 1 WHERE id = $1`

	tag, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected users repository increment error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notificationservice.ErrUserNotFound
	}

	return nil
}
