// Package payment implements the payment repository using PostgreSQL.
// Status changes go through a guarded UPDATE so concurrent gateway callbacks
// cannot overwrite each other's terminal state.
package payment

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
	paymentsvc "github.com/communova/communova-backend/internal/service/payment"
)

// Repo provides payment persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new payment repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const paymentColumns = `id, user_id, amount, currency, purpose, status, created_at, updated_at`

const createSQL = `
INSERT INTO payments (id, user_id, amount, currency, purpose, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

const getByIDSQL = `
SELECT ` + paymentColumns + `
FROM payments
WHERE id = $1`

const updateStatusSQL = `
UPDATE payments
SET status = $3, updated_at = $4
WHERE id = $1 AND status = $2`

const existsSQL = `
SELECT EXISTS (SELECT 1 FROM payments WHERE id = $1)`

// Create inserts a new payment.
func (r *Repo) Create(ctx context.Context, p *domain.Payment) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, createSQL,
		p.ID,
		p.UserID,
		p.Amount,
		p.Currency,
		p.Purpose,
		string(p.Status),
		p.CreatedAt.UTC().Truncate(time.Microsecond),
		p.UpdatedAt.UTC().Truncate(time.Microsecond),
	)
	if err != nil {
		return postgres.MapError(err, "payment", p.ID)
	}

	return nil
}

// GetByID returns a payment by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanPayment(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "payment", id)
	}

	return p, nil
}

// List returns payments matching the filter, newest first.
func (r *Repo) List(ctx context.Context, filter paymentsvc.ListFilter) ([]*domain.Payment, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	q := builder.
		Select("id", "user_id", "amount", "currency", "purpose", "status", "created_at", "updated_at").
		From("payments").
		Where(squirrel.Eq{"user_id": filter.UserID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))

	if filter.Status != "" {
		q = q.Where(squirrel.Eq{"status": string(filter.Status)})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	return scanPayments(rows)
}

// UpdateStatus moves a payment from one status to another in a single
// guarded statement. When zero rows match, the row either does not exist
// (domain.ErrNotFound) or no longer carries the expected status
// (domain.ErrConflict); an existence probe distinguishes the two.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.PaymentStatus, updatedAt time.Time) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, updateStatusSQL, id, string(from), string(to), updatedAt.UTC())
	if err != nil {
		return postgres.MapError(err, "payment", id)
	}
	if ct.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := querier.QueryRow(ctx, existsSQL, id).Scan(&exists); err != nil {
		return postgres.MapError(err, "payment", id)
	}
	if !exists {
		return fmt.Errorf("payment %s: %w", id, domain.ErrNotFound)
	}

	return fmt.Errorf("payment %s: status is no longer %s: %w", id, from, domain.ErrConflict)
}

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var (
		p      domain.Payment
		status string
	)

	if err := row.Scan(&p.ID, &p.UserID, &p.Amount, &p.Currency, &p.Purpose, &status, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}

	p.Status = domain.PaymentStatus(status)
	return &p, nil
}

func scanPayments(rows pgx.Rows) ([]*domain.Payment, error) {
	payments := []*domain.Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}
