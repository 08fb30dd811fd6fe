// Package like implements the like repository using PostgreSQL. The table
// deliberately carries no unique (user, target) constraint; duplicates are
// tolerated and cleared by the reconciliation job.
package like

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

// Repo provides like persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new like repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const likeColumns = `id, user_id, target_type, target_id, created_at`

const createSQL = `
INSERT INTO likes (id, user_id, target_type, target_id, created_at)
VALUES ($1, $2, $3, $4, $5)`

const deleteByPairSQL = `
DELETE FROM likes
WHERE user_id = $1 AND target_type = $2 AND target_id = $3`

const deleteByIDSQL = `
DELETE FROM likes WHERE id = $1`

const existsByPairSQL = `
SELECT EXISTS (
	SELECT 1 FROM likes
	WHERE user_id = $1 AND target_type = $2 AND target_id = $3
)`

const countByTargetSQL = `
SELECT count(DISTINCT user_id)
FROM likes
WHERE target_type = $1 AND target_id = $2`

const listByUserSQL = `
SELECT ` + likeColumns + `
FROM likes
WHERE user_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2 OFFSET $3`

// listDuplicatesSQL returns every row of each (user, target) pair holding
// more than one like. Ordering keeps rows of one pair adjacent for
// debuggability; callers group by pair either way.
const listDuplicatesSQL = `
SELECT ` + likeColumns + `
FROM likes
WHERE (user_id, target_type, target_id) IN (
	SELECT user_id, target_type, target_id
	FROM likes
	GROUP BY user_id, target_type, target_id
	HAVING count(*) > 1
)
ORDER BY user_id, target_type, target_id, created_at, id`

// Create inserts a new like.
func (r *Repo) Create(ctx context.Context, l *domain.Like) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, createSQL,
		l.ID,
		l.UserID,
		string(l.TargetType),
		l.TargetID,
		l.CreatedAt.UTC().Truncate(time.Microsecond),
	)
	if err != nil {
		return postgres.MapError(err, "like", l.ID)
	}

	return nil
}

// DeleteByPair removes every like the user holds on the target. Returns the
// number of rows removed; zero is not an error.
func (r *Repo) DeleteByPair(ctx context.Context, userID uuid.UUID, targetType domain.LikeTarget, targetID uuid.UUID) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, deleteByPairSQL, userID, string(targetType), targetID)
	if err != nil {
		return 0, fmt.Errorf("delete likes: %w", err)
	}

	return ct.RowsAffected(), nil
}

// DeleteByID removes a single like row.
func (r *Repo) DeleteByID(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, deleteByIDSQL, id); err != nil {
		return postgres.MapError(err, "like", id)
	}

	return nil
}

// ExistsByPair reports whether the user already likes the target.
func (r *Repo) ExistsByPair(ctx context.Context, userID uuid.UUID, targetType domain.LikeTarget, targetID uuid.UUID) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := querier.QueryRow(ctx, existsByPairSQL, userID, string(targetType), targetID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check like exists: %w", err)
	}

	return exists, nil
}

// CountByTarget counts distinct users liking a target, so duplicate rows do
// not inflate the number.
func (r *Repo) CountByTarget(ctx context.Context, targetType domain.LikeTarget, targetID uuid.UUID) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int64
	if err := querier.QueryRow(ctx, countByTargetSQL, string(targetType), targetID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count likes: %w", err)
	}

	return count, nil
}

// ListByUser returns a user's likes with pagination, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Like, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByUserSQL, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list likes: %w", err)
	}
	defer rows.Close()

	return scanLikes(rows)
}

// ListDuplicates returns every like belonging to a pair with more than one
// row.
func (r *Repo) ListDuplicates(ctx context.Context) ([]*domain.Like, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listDuplicatesSQL)
	if err != nil {
		return nil, fmt.Errorf("list duplicate likes: %w", err)
	}
	defer rows.Close()

	return scanLikes(rows)
}

func scanLikes(rows pgx.Rows) ([]*domain.Like, error) {
	likes := []*domain.Like{}
	for rows.Next() {
		var (
			l          domain.Like
			targetType string
		)
		if err := rows.Scan(&l.ID, &l.UserID, &targetType, &l.TargetID, &l.CreatedAt); err != nil {
			return nil, err
		}
		l.TargetType = domain.LikeTarget(targetType)
		likes = append(likes, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return likes, nil
}
