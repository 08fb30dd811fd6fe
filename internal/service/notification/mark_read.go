package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/communova/communova-backend/internal/authz"
	"github.com/communova/communova-backend/internal/domain"
)

// MarkRead transitions a notification to read. Marking an already-read
// notification succeeds without touching storage, so client retries and
// double-fires converge on the same state.
//
// The entity is loaded before the ownership check: a request for a
// nonexistent notification gets ErrNotFound even from a caller who would
// not have been allowed to see it.
func (s *Service) MarkRead(ctx context.Context, p domain.Principal, id uuid.UUID) (*domain.Notification, error) {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get notification: %w", err)
	}

	if err := authz.Authorize(p, n.UserID); err != nil {
		return nil, err
	}

	if !n.MarkRead(s.now()) {
		return n, nil
	}

	if err := s.repo.Update(ctx, n); err != nil {
		return nil, fmt.Errorf("update notification: %w", err)
	}

	return n, nil
}

// MarkAllRead transitions every unread notification of the caller to read.
// Returns the number of notifications that changed state.
func (s *Service) MarkAllRead(ctx context.Context, p domain.Principal) (int64, error) {
	count, err := s.repo.MarkAllRead(ctx, p.ID, s.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("mark all read: %w", err)
	}

	if count > 0 {
		s.log.InfoContext(ctx, "notifications marked read",
			slog.String("user_id", p.ID.String()),
			slog.Int64("count", count),
		)
	}

	return count, nil
}
