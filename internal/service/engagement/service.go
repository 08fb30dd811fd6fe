// Package engagement implements likes on articles and events, plus the
// offline reconciliation job that removes duplicate likes the write path
// can leave behind under concurrency.
package engagement

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/communova/communova-backend/internal/domain"
)

type likeRepo interface {
	Create(ctx context.Context, like *domain.Like) error
	// DeleteByPair removes every like the user holds on the target,
	// duplicates included. Returns the number of rows removed.
	DeleteByPair(ctx context.Context, userID uuid.UUID, targetType domain.LikeTarget, targetID uuid.UUID) (int64, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
	ExistsByPair(ctx context.Context, userID uuid.UUID, targetType domain.LikeTarget, targetID uuid.UUID) (bool, error)
	// CountByTarget counts distinct users, so duplicate rows awaiting
	// reconciliation do not inflate the number.
	CountByTarget(ctx context.Context, targetType domain.LikeTarget, targetID uuid.UUID) (int64, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Like, error)
	// ListDuplicates returns every like belonging to a (user, target) pair
	// that holds more than one row.
	ListDuplicates(ctx context.Context) ([]*domain.Like, error)
}

// Service provides like operations.
type Service struct {
	repo likeRepo
	log  *slog.Logger
	now  func() time.Time
}

// NewService creates a new engagement service.
func NewService(log *slog.Logger, repo likeRepo) *Service {
	return &Service{
		repo: repo,
		log:  log.With("service", "engagement"),
		now:  time.Now,
	}
}
