package notification

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/communova/communova-backend/internal/authz"
	"github.com/communova/communova-backend/internal/domain"
)

// Create delivers a notification to a user. Admin only: notifications are
// normally produced by internal domain events, and this is the operator
// entry point for the same path.
func (s *Service) Create(ctx context.Context, p domain.Principal, input CreateInput) (*domain.Notification, error) {
	if err := authz.RequireAdmin(p); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	n := &domain.Notification{
		ID:        uuid.New(),
		UserID:    input.UserID,
		Title:     strings.TrimSpace(input.Title),
		Body:      input.Body,
		CreatedAt: s.now().UTC(),
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}

	s.log.InfoContext(ctx, "notification delivered",
		slog.String("notification_id", n.ID.String()),
		slog.String("user_id", n.UserID.String()),
	)

	return n, nil
}
