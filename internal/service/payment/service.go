// Package payment implements the payment lifecycle around the gateway:
// creating PENDING records, applying verification callbacks exactly once,
// and the manual admin confirmation step.
package payment

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/communova/communova-backend/internal/domain"
)

// ListFilter narrows a payment listing.
type ListFilter struct {
	UserID uuid.UUID
	Status domain.PaymentStatus
	Limit  int
	Offset int
}

type paymentRepo interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error)
	List(ctx context.Context, filter ListFilter) ([]*domain.Payment, error)
	// UpdateStatus persists a status change guarded by the expected current
	// status. Returns domain.ErrConflict when the row no longer carries the
	// expected status, so concurrent callbacks cannot both win.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.PaymentStatus, updatedAt time.Time) error
}

// Service provides payment operations.
type Service struct {
	repo paymentRepo
	log  *slog.Logger
	now  func() time.Time
}

// NewService creates a new payment service.
func NewService(log *slog.Logger, repo paymentRepo) *Service {
	return &Service{
		repo: repo,
		log:  log.With("service", "payment"),
		now:  time.Now,
	}
}
