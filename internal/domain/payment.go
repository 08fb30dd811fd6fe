package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PaymentStatus is the lifecycle state of a payment.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentSuccess  PaymentStatus = "SUCCESS"
	PaymentFailed   PaymentStatus = "FAILED"
	PaymentVerified PaymentStatus = "VERIFIED"
)

// Valid reports whether the status is one of the known values.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentSuccess, PaymentFailed, PaymentVerified:
		return true
	}
	return false
}

// Terminal reports whether the status is final. A payment in a terminal
// status never transitions again via gateway callbacks.
func (s PaymentStatus) Terminal() bool {
	return s == PaymentSuccess || s == PaymentFailed || s == PaymentVerified
}

// Payment is a purchase record (course enrollment, event ticket).
type Payment struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Amount    int64 // minor currency units
	Currency  string
	Purpose   string
	Status    PaymentStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ApplyGatewayResult applies a gateway verification callback.
//
// PENDING moves to SUCCESS or FAILED exactly once. A callback arriving for a
// payment already in a terminal status is an idempotent no-op, not an error:
// gateways retry callbacks and a client disconnect may leave a completed
// write behind a failed response. Returns true if the status changed.
func (p *Payment) ApplyGatewayResult(target PaymentStatus) (bool, error) {
	if target != PaymentSuccess && target != PaymentFailed {
		return false, fmt.Errorf("gateway result %q: %w", target, ErrValidation)
	}
	if p.Status.Terminal() {
		return false, nil
	}
	p.Status = target
	return true, nil
}

// MarkVerified records a manual admin confirmation of a successful payment.
// VERIFIED is idempotent; verifying a PENDING or FAILED payment is a
// conflict.
func (p *Payment) MarkVerified() (bool, error) {
	switch p.Status {
	case PaymentVerified:
		return false, nil
	case PaymentSuccess:
		p.Status = PaymentVerified
		return true, nil
	default:
		return false, fmt.Errorf("verify payment in status %q: %w", p.Status, ErrConflict)
	}
}
