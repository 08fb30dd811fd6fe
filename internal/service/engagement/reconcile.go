package engagement

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/communova/communova-backend/internal/domain"
)

// ReconcileReport summarizes one reconciliation run.
type ReconcileReport struct {
	Groups  int
	Deleted int
}

type pairKey struct {
	userID     uuid.UUID
	targetType domain.LikeTarget
	targetID   uuid.UUID
}

// Reconcile removes duplicate likes left behind by the non-atomic write
// path. For each (user, target) pair holding more than one row it keeps the
// earliest like and deletes the rest. Deletes are paced by the limiter so
// a large backlog does not saturate the database.
//
// The job is idempotent: a second run over the same data finds no
// duplicates and deletes nothing. A duplicate inserted mid-run survives
// until the next run.
func (s *Service) Reconcile(ctx context.Context, limiter *rate.Limiter) (ReconcileReport, error) {
	var report ReconcileReport

	likes, err := s.repo.ListDuplicates(ctx)
	if err != nil {
		return report, fmt.Errorf("list duplicate likes: %w", err)
	}
	if len(likes) == 0 {
		return report, nil
	}

	groups := make(map[pairKey][]*domain.Like)
	for _, l := range likes {
		key := pairKey{userID: l.UserID, targetType: l.TargetType, targetID: l.TargetID}
		groups[key] = append(groups[key], l)
	}

	for _, group := range groups {
		if len(group) < 2 {
			continue
		}
		report.Groups++

		// Earliest by creation time; id breaks ties deterministically.
		sort.Slice(group, func(i, j int) bool {
			if !group[i].CreatedAt.Equal(group[j].CreatedAt) {
				return group[i].CreatedAt.Before(group[j].CreatedAt)
			}
			return group[i].ID.String() < group[j].ID.String()
		})

		for _, extra := range group[1:] {
			if err := limiter.Wait(ctx); err != nil {
				return report, fmt.Errorf("rate limiter wait: %w", err)
			}
			if err := s.repo.DeleteByID(ctx, extra.ID); err != nil {
				return report, fmt.Errorf("delete duplicate like %s: %w", extra.ID, err)
			}
			report.Deleted++
		}
	}

	s.log.InfoContext(ctx, "like reconciliation finished",
		slog.Int("groups", report.Groups),
		slog.Int("deleted", report.Deleted),
	)

	return report, nil
}
