package payment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/communova/communova-backend/internal/domain"
)

// Create opens a PENDING payment for the caller.
func (s *Service) Create(ctx context.Context, p domain.Principal, input CreateInput) (*domain.Payment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	payment := &domain.Payment{
		ID:        uuid.New(),
		UserID:    p.ID,
		Amount:    input.Amount,
		Currency:  strings.ToUpper(input.Currency),
		Purpose:   strings.TrimSpace(input.Purpose),
		Status:    domain.PaymentPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	s.log.InfoContext(ctx, "payment created",
		slog.String("payment_id", payment.ID.String()),
		slog.String("user_id", p.ID.String()),
		slog.Int64("amount", payment.Amount),
		slog.String("currency", payment.Currency),
	)

	return payment, nil
}
