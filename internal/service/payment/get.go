package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/communova/communova-backend/internal/authz"
	"github.com/communova/communova-backend/internal/domain"
)

// Get returns a payment visible to the caller: the owner or an admin.
func (s *Service) Get(ctx context.Context, p domain.Principal, id uuid.UUID) (*domain.Payment, error) {
	payment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	if err := authz.Authorize(p, payment.UserID); err != nil {
		return nil, err
	}

	return payment, nil
}

// List returns the caller's payments, newest first.
func (s *Service) List(ctx context.Context, p domain.Principal, status domain.PaymentStatus, limit, offset int) ([]*domain.Payment, error) {
	if status != "" && !status.Valid() {
		return nil, domain.NewValidationError("status", "unknown value")
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	items, err := s.repo.List(ctx, ListFilter{
		UserID: p.ID,
		Status: status,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}

	return items, nil
}
