// Package session implements the login session repository using PostgreSQL.
// Sessions are keyed by the SHA-256 hash of the cookie token; the raw token
// never reaches storage.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/communova/communova-backend/internal/adapter/postgres"
	"github.com/communova/communova-backend/internal/domain"
)

// Repo provides session persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new session repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const sessionColumns = `id, user_id, token_hash, expires_at, created_at`

const createSQL = `
INSERT INTO sessions (id, user_id, token_hash, expires_at, created_at)
VALUES ($1, $2, $3, $4, $5)`

const getByTokenHashSQL = `
SELECT ` + sessionColumns + `
FROM sessions
WHERE token_hash = $1`

const deleteByTokenHashSQL = `
DELETE FROM sessions WHERE token_hash = $1`

const deleteExpiredSQL = `
DELETE FROM sessions WHERE expires_at <= $1`

// Create inserts a new session.
func (r *Repo) Create(ctx context.Context, s *domain.Session) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, createSQL,
		s.ID,
		s.UserID,
		s.TokenHash,
		s.ExpiresAt.UTC().Truncate(time.Microsecond),
		s.CreatedAt.UTC().Truncate(time.Microsecond),
	)
	if err != nil {
		return postgres.MapError(err, "session", s.ID)
	}

	return nil
}

// GetByTokenHash returns the session holding the given token hash.
func (r *Repo) GetByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSession(querier.QueryRow(ctx, getByTokenHashSQL, tokenHash))
	if err != nil {
		return nil, postgres.MapError(err, "session", uuid.Nil)
	}

	return s, nil
}

// DeleteByTokenHash removes the session holding the given token hash.
// Returns domain.ErrNotFound when no such session exists.
func (r *Repo) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, deleteByTokenHashSQL, tokenHash)
	if err != nil {
		return postgres.MapError(err, "session", uuid.Nil)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("session: %w", domain.ErrNotFound)
	}

	return nil
}

// DeleteExpired removes all sessions expired as of now. Used by the offline
// cleanup job; returns the number of rows removed.
func (r *Repo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, deleteExpiredSQL, now.UTC())
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}

	return ct.RowsAffected(), nil
}

func scanSession(row pgx.Row) (*domain.Session, error) {
	var s domain.Session
	if err := row.Scan(&s.ID, &s.UserID, &s.TokenHash, &s.ExpiresAt, &s.CreatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}
