package notification

import (
	"context"
	"fmt"

	"github.com/communova/communova-backend/internal/domain"
)

// List returns the caller's notifications, newest first.
func (s *Service) List(ctx context.Context, p domain.Principal, input ListInput) ([]*domain.Notification, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = defaultListLimit
	}

	items, err := s.repo.List(ctx, ListFilter{
		UserID:     p.ID,
		OnlyUnread: input.OnlyUnread,
		Limit:      limit,
		Offset:     input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	return items, nil
}
