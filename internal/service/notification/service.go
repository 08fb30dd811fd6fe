// Package notification implements the per-user notification inbox: delivery,
// listing, and the monotonic read transition.
package notification

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/communova/communova-backend/internal/domain"
)

// ListFilter narrows a notification listing.
type ListFilter struct {
	UserID     uuid.UUID
	OnlyUnread bool
	Limit      int
	Offset     int
}

type notificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error)
	List(ctx context.Context, filter ListFilter) ([]*domain.Notification, error)
	Update(ctx context.Context, n *domain.Notification) error
	MarkAllRead(ctx context.Context, userID uuid.UUID, readAt time.Time) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service provides notification operations.
type Service struct {
	repo notificationRepo
	log  *slog.Logger
	now  func() time.Time
}

// NewService creates a new notification service.
func NewService(log *slog.Logger, repo notificationRepo) *Service {
	return &Service{
		repo: repo,
		log:  log.With("service", "notification"),
		now:  time.Now,
	}
}
