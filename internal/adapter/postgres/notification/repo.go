// Package notification implements the notification repository using
// PostgreSQL. Fixed queries use raw SQL constants; the filtered listing is
// built with squirrel since its WHERE clause varies by filter.
package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/communova/communova-backend/internal/adapter/postgres"
	"github.com/communova/communova-backend/internal/domain"
	notifsvc "github.com/communova/communova-backend/internal/service/notification"
)

// Repo provides notification persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new notification repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const notificationColumns = `id, user_id, title, body, read, created_at, read_at`

const createSQL = `
INSERT INTO notifications (id, user_id, title, body, read, created_at)
VALUES ($1, $2, $3, $4, false, $5)`

const getByIDSQL = `
SELECT ` + notificationColumns + `
FROM notifications
WHERE id = $1`

const updateSQL = `
UPDATE notifications
SET read = $2, read_at = $3
WHERE id = $1`

const markAllReadSQL = `
UPDATE notifications
SET read = true, read_at = $2
WHERE user_id = $1 AND read = false`

const deleteSQL = `
DELETE FROM notifications WHERE id = $1`

// Create inserts a new notification.
func (r *Repo) Create(ctx context.Context, n *domain.Notification) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, createSQL,
		n.ID,
		n.UserID,
		n.Title,
		n.Body,
		n.CreatedAt.UTC().Truncate(time.Microsecond),
	)
	if err != nil {
		return postgres.MapError(err, "notification", n.ID)
	}

	return nil
}

// GetByID returns a notification by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := scanNotification(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "notification", id)
	}

	return n, nil
}

// List returns notifications matching the filter, newest first.
func (r *Repo) List(ctx context.Context, filter notifsvc.ListFilter) ([]*domain.Notification, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	q := builder.
		Select("id", "user_id", "title", "body", "read", "created_at", "read_at").
		From("notifications").
		Where(squirrel.Eq{"user_id": filter.UserID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))

	if filter.OnlyUnread {
		q = q.Where(squirrel.Eq{"read": false})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	return scanNotifications(rows)
}

// Update persists the read flag and read_at of a notification.
func (r *Repo) Update(ctx context.Context, n *domain.Notification) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, updateSQL, n.ID, n.Read, n.ReadAt)
	if err != nil {
		return postgres.MapError(err, "notification", n.ID)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("notification %s: %w", n.ID, domain.ErrNotFound)
	}

	return nil
}

// MarkAllRead flips every unread notification of a user to read in one
// statement. Returns the number of rows changed.
func (r *Repo) MarkAllRead(ctx context.Context, userID uuid.UUID, readAt time.Time) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, markAllReadSQL, userID, readAt.UTC())
	if err != nil {
		return 0, fmt.Errorf("mark all read: %w", err)
	}

	return ct.RowsAffected(), nil
}

// Delete removes a notification. Returns domain.ErrNotFound when no row
// matches.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "notification", id)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("notification %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func scanNotification(row pgx.Row) (*domain.Notification, error) {
	var n domain.Notification
	if err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Body, &n.Read, &n.CreatedAt, &n.ReadAt); err != nil {
		return nil, err
	}
	return &n, nil
}

func scanNotifications(rows pgx.Rows) ([]*domain.Notification, error) {
	notifications := []*domain.Notification{}
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Body, &n.Read, &n.CreatedAt, &n.ReadAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}
