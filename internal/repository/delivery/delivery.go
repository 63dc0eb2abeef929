package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"delivery-marketplace/internal/entities"
	deliveryservice "delivery-marketplace/internal/service/delivery"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const deliveryColumns = `id, requester_id, delivery_person_id, title, description,
		pickup_address, pickup_lat, pickup_lng,
		dropoff_address, dropoff_lat, dropoff_lng,
		package_weight, package_dimensions, package_fragile, images,
		accept_deadline, delivery_deadline, price, status, payment_status,
		accepted_at, completed_at, cancelled_at, cancellation_reason,
		created_at, updated_at`

var selectColumns = []string{
	"id", "requester_id", "delivery_person_id", "title", "description",
	"pickup_address", "pickup_lat", "pickup_lng",
	"dropoff_address", "dropoff_lat", "dropoff_lng",
	"package_weight", "package_dimensions", "package_fragile", "images",
	"accept_deadline", "delivery_deadline", "price", "status", "payment_status",
	"accepted_at", "completed_at", "cancelled_at", "cancellation_reason",
	"created_at", "updated_at",
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, requesterID int64, draft entities.DeliveryDraft) (*entities.Delivery, error) {
	query := `
		INSERT INTO deliveries (
			requester_id, title, description,
			pickup_address, pickup_lat, pickup_lng,
			dropoff_address, dropoff_lat, dropoff_lng,
			package_weight, package_dimensions, package_fragile, images,
			accept_deadline, delivery_deadline, price
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING ` + deliveryColumns

	var dimensions *string
	if draft.Package.Dimensions != "" {
		dimensions = &draft.Package.Dimensions
	}

	row := r.querier.QueryRow(
		ctx,
		query,
		requesterID,
		draft.Title,
		draft.Description,
		draft.Pickup.Address,
		draft.Pickup.Lat,
		draft.Pickup.Lng,
		draft.Dropoff.Address,
		draft.Dropoff.Lat,
		draft.Dropoff.Lng,
		draft.Package.Weight,
		dimensions,
		draft.Package.Fragile,
		draft.Images,
		draft.AcceptDeadline,
		draft.DeliveryDeadline,
		draft.Price,
	)

	deliveryDB, err := scanDelivery(row)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	return ToDomain(deliveryDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Delivery, error) {
	query := `SELECT ` + deliveryColumns + ` FROM deliveries WHERE id = $1`

	deliveryDB, err := scanDelivery(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, deliveryservice.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository get error: %w", err)
	}

	return ToDomain(deliveryDB), nil
}

func (r *Repository) ListAvailable(ctx context.Context, excludeUserID int64, now time.Time, filter entities.AvailableFilter) ([]entities.Delivery, int64, error) {
	conditions := availableConditions(excludeUserID, now, filter)

	countQuery, countArgs, err := qb.
		Select("COUNT(*)").
		From("deliveries").
		Where(conditions).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int64
	if err := r.querier.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("unexpected delivery repository count error: %w", err)
	}

	offset := uint64(filter.Page-1) * uint64(filter.Limit)

	query, args, err := qb.
		Select(selectColumns...).
		From("deliveries").
		Where(conditions).
		OrderBy("created_at DESC").
		Limit(uint64(filter.Limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	deliveries, err := r.queryList(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}

	return deliveries, total, nil
}

func availableConditions(excludeUserID int64, now time.Time, filter entities.AvailableFilter) sq.And {
	conditions := sq.And{
		sq.Eq{"status": entities.DeliveryPending.String()},
		sq.Gt{"accept_deadline": now},
		sq.NotEq{"requester_id": excludeUserID},
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		conditions = append(conditions, sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"description": pattern},
		})
	}
	if filter.MinPrice != nil {
		conditions = append(conditions, sq.GtOrEq{"price": *filter.MinPrice})
	}
	if filter.MaxPrice != nil {
		conditions = append(conditions, sq.LtOrEq{"price": *filter.MaxPrice})
	}

	return conditions
}

func (r *Repository) ListByParticipant(ctx context.Context, userID int64, filter entities.MineFilter) ([]entities.Delivery, error) {
	var condition sq.Sqlizer
	switch filter {
	case entities.MineRequested:
		condition = sq.Eq{"requester_id": userID}
	case entities.MineDelivering:
		condition = sq.Eq{"delivery_person_id": userID}
	default:
		condition = sq.Or{
			sq.Eq{"requester_id": userID},
			sq.Eq{"delivery_person_id": userID},
		}
	}

	query, args, err := qb.
		Select(selectColumns...).
		From("deliveries").
		Where(condition).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	return r.queryList(ctx, query, args...)
}

func (r *Repository) AcceptIfPending(ctx context.Context, id, acceptorID int64, at time.Time) (*entities.Delivery, error) {
	query := `
		UPDATE deliveries
		SET delivery_person_id = $2,
		    status = 'accepted',
		    accepted_at = $3,
		    updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
		RETURNING ` + deliveryColumns

	deliveryDB, err := scanDelivery(r.querier.QueryRow(ctx, query, id, acceptorID, at))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Lost the race: someone moved the row out of pending first.
			return nil, deliveryservice.ErrAlreadyTaken
		}
		return nil, fmt.Errorf("unexpected delivery repository accept error: %w", err)
	}

	return ToDomain(deliveryDB), nil
}

// CountScheduleConflicts keeps the original one-sided overlap test: only the
// existing deliveries' delivery_deadline is checked against the candidate's
// [accept_deadline, delivery_deadline] window.
func (r *Repository) CountScheduleConflicts(ctx context.Context, acceptorID int64, from, to time.Time) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM deliveries
		WHERE delivery_person_id = $1
		  AND status IN ('accepted', 'in_progress')
		  AND delivery_deadline >= $2
		  AND delivery_deadline <= $3
	`

	var count int64
	err := r.querier.QueryRow(ctx, query, acceptorID, from, to).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected delivery repository conflict count error: %w", err)
	}

	return count, nil
}

func (r *Repository) UpdateStatusIf(ctx context.Context, id int64, from, to entities.DeliveryStatusType, at time.Time) (*entities.Delivery, error) {
	builder := qb.
		Update("deliveries").
		Set("status", to.String()).
		Set("updated_at", at)

	if to == entities.DeliveryCompleted {
		builder = builder.Set("completed_at", at)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": id, "status": from.String()}).
		Suffix("RETURNING " + deliveryColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}

	deliveryDB, err := scanDelivery(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, deliveryservice.ErrInvalidTransition
		}
		return nil, fmt.Errorf("unexpected delivery repository status update error: %w", err)
	}

	return ToDomain(deliveryDB), nil
}

func (r *Repository) CancelIfPending(ctx context.Context, id int64, reason string, at time.Time) (*entities.Delivery, error) {
	query := `
		UPDATE deliveries
		SET status = 'cancelled',
		    cancelled_at = $2,
		    cancellation_reason = $3,
		    updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
		RETURNING ` + deliveryColumns

	deliveryDB, err := scanDelivery(r.querier.QueryRow(ctx, query, id, at, reason))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, deliveryservice.ErrNotPending
		}
		return nil, fmt.Errorf("unexpected delivery repository cancel error: %w", err)
	}

	return ToDomain(deliveryDB), nil
}

func (r *Repository) MarkExpiredIfPending(ctx context.Context, id int64) error {
	query := `
		UPDATE deliveries
		SET status = 'expired', updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
	`

	if _, err := r.querier.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("unexpected delivery repository expire error: %w", err)
	}
	return nil
}

func (r *Repository) ExpirePendingBefore(ctx context.Context, before time.Time, limit int) ([]entities.Delivery, error) {
	query := `
		UPDATE deliveries
		SET status = 'expired', updated_at = NOW()
		WHERE id IN (
			SELECT id FROM deliveries
			WHERE status = 'pending' AND accept_deadline < $1
			ORDER BY accept_deadline
			LIMIT $2
			FOR UPDATE SKIP LOCKED
		)
		RETURNING ` + deliveryColumns

	return r.queryList(ctx, query, before, limit)
}

func (r *Repository) ListApproachingDeadline(ctx context.Context, from, to time.Time, limit int) ([]entities.Delivery, error) {
	query := `
		SELECT ` + deliveryColumns + `
		FROM deliveries
		WHERE status IN ('accepted', 'in_progress')
		  AND delivery_deadline > $1
		  AND delivery_deadline <= $2
		ORDER BY delivery_deadline
		LIMIT $3
	`

	return r.queryList(ctx, query, from, to, limit)
}

func (r *Repository) queryList(ctx context.Context, query string, args ...interface{}) ([]entities.Delivery, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository query error: %w", err)
	}
	defer rows.Close()

	var models []DeliveryDB
	for rows.Next() {
		deliveryDB, err := scanDelivery(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected delivery repository scan error: %w", err)
		}
		models = append(models, *deliveryDB)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected delivery repository rows error: %w", err)
	}

	return ToDomainList(models), nil
}

func scanDelivery(row pgx.Row) (*DeliveryDB, error) {
	var d DeliveryDB
	err := row.Scan(
		&d.ID,
		&d.RequesterID,
		&d.DeliveryPersonID,
		&d.Title,
		&d.Description,
		&d.PickupAddress,
		&d.PickupLat,
		&d.PickupLng,
		&d.DropoffAddress,
		&d.DropoffLat,
		&d.DropoffLng,
		&d.PackageWeight,
		&d.PackageDimensions,
		&d.PackageFragile,
		&d.Images,
		&d.AcceptDeadline,
		&d.DeliveryDeadline,
		&d.Price,
		&d.Status,
		&d.PaymentStatus,
		&d.AcceptedAt,
		&d.CompletedAt,
		&d.CancelledAt,
		&d.CancellationReason,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
