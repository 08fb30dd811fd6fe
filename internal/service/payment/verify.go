package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/communova/communova-backend/internal/authz"
	"github.com/communova/communova-backend/internal/domain"
)

// ApplyGatewayResult applies a gateway verification callback to a payment.
//
// The transition PENDING -> SUCCESS/FAILED happens exactly once. Gateways
// retry callbacks, so a callback for a payment already in a terminal status
// returns the current record unchanged instead of failing. The persisted
// update is guarded by the expected current status; when two callbacks race,
// the loser re-reads and reports the winner's result.
func (s *Service) ApplyGatewayResult(ctx context.Context, id uuid.UUID, target domain.PaymentStatus) (*domain.Payment, error) {
	payment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	changed, err := payment.ApplyGatewayResult(target)
	if err != nil {
		return nil, err
	}
	if !changed {
		return payment, nil
	}

	now := s.now().UTC()
	err = s.repo.UpdateStatus(ctx, id, domain.PaymentPending, target, now)
	if errors.Is(err, domain.ErrConflict) {
		// Lost a race against another callback. The row is terminal now;
		// report whatever state won.
		current, getErr := s.repo.GetByID(ctx, id)
		if getErr != nil {
			return nil, fmt.Errorf("get payment after conflict: %w", getErr)
		}
		if current.Status.Terminal() {
			return current, nil
		}
		return nil, fmt.Errorf("update payment status: %w", err)
	}
	if err != nil {
		return nil, fmt.Errorf("update payment status: %w", err)
	}
	payment.UpdatedAt = now

	s.log.InfoContext(ctx, "payment resolved",
		slog.String("payment_id", payment.ID.String()),
		slog.String("status", string(payment.Status)),
	)

	return payment, nil
}

// MarkVerified records a manual admin confirmation of a successful payment.
// Idempotent for payments already VERIFIED.
func (s *Service) MarkVerified(ctx context.Context, p domain.Principal, id uuid.UUID) (*domain.Payment, error) {
	if err := authz.RequireAdmin(p); err != nil {
		return nil, err
	}

	payment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	changed, err := payment.MarkVerified()
	if err != nil {
		return nil, err
	}
	if !changed {
		return payment, nil
	}

	now := s.now().UTC()
	if err := s.repo.UpdateStatus(ctx, id, domain.PaymentSuccess, domain.PaymentVerified, now); err != nil {
		return nil, fmt.Errorf("update payment status: %w", err)
	}
	payment.UpdatedAt = now

	s.log.InfoContext(ctx, "payment verified",
		slog.String("payment_id", payment.ID.String()),
		slog.String("admin_id", p.ID.String()),
	)

	return payment, nil
}
