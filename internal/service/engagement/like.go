package engagement

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/communova/communova-backend/internal/domain"
)

// Like records the caller's like on a target. A second like of the same
// target is a no-op.
//
// The check and the insert are separate statements, so two concurrent
// requests can both pass the check and insert two rows. That window is
// accepted: reads count distinct users, and Reconcile removes the extra
// rows offline.
func (s *Service) Like(ctx context.Context, p domain.Principal, targetType domain.LikeTarget, targetID uuid.UUID) error {
	if !targetType.Valid() {
		return domain.NewValidationError("target_type", "unknown value")
	}
	if targetID == uuid.Nil {
		return domain.NewValidationError("target_id", "required")
	}

	exists, err := s.repo.ExistsByPair(ctx, p.ID, targetType, targetID)
	if err != nil {
		return fmt.Errorf("check existing like: %w", err)
	}
	if exists {
		return nil
	}

	if err := s.repo.Create(ctx, &domain.Like{
		ID:         uuid.New(),
		UserID:     p.ID,
		TargetType: targetType,
		TargetID:   targetID,
		CreatedAt:  s.now().UTC(),
	}); err != nil {
		return fmt.Errorf("create like: %w", err)
	}

	return nil
}

// Unlike removes the caller's like on a target, duplicates included.
// Unliking a target that was never liked succeeds.
func (s *Service) Unlike(ctx context.Context, p domain.Principal, targetType domain.LikeTarget, targetID uuid.UUID) error {
	if !targetType.Valid() {
		return domain.NewValidationError("target_type", "unknown value")
	}
	if targetID == uuid.Nil {
		return domain.NewValidationError("target_id", "required")
	}

	removed, err := s.repo.DeleteByPair(ctx, p.ID, targetType, targetID)
	if err != nil {
		return fmt.Errorf("delete like: %w", err)
	}

	if removed > 1 {
		s.log.InfoContext(ctx, "unlike removed duplicate rows",
			slog.String("user_id", p.ID.String()),
			slog.Int64("removed", removed),
		)
	}

	return nil
}

// CountByTarget returns how many distinct users like a target.
func (s *Service) CountByTarget(ctx context.Context, targetType domain.LikeTarget, targetID uuid.UUID) (int64, error) {
	if !targetType.Valid() {
		return 0, domain.NewValidationError("target_type", "unknown value")
	}

	count, err := s.repo.CountByTarget(ctx, targetType, targetID)
	if err != nil {
		return 0, fmt.Errorf("count likes: %w", err)
	}
	return count, nil
}

// ListByUser returns the caller's likes, newest first.
func (s *Service) ListByUser(ctx context.Context, p domain.Principal, limit, offset int) ([]*domain.Like, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	likes, err := s.repo.ListByUser(ctx, p.ID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list likes: %w", err)
	}
	return likes, nil
}
