package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/communova/communova-backend/internal/authz"
	"github.com/communova/communova-backend/internal/domain"
)

// Delete removes a notification. Unlike MarkRead, deletion is not
// idempotent at the API level: a second delete of the same id returns
// ErrNotFound because the entity load fails.
func (s *Service) Delete(ctx context.Context, p domain.Principal, id uuid.UUID) error {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get notification: %w", err)
	}

	if err := authz.Authorize(p, n.UserID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}

	return nil
}
