package engagement

import (
	"context"

	"github.com/google/uuid"

	"github.com/communova/communova-backend/internal/domain"
)

type repoMock struct {
	CreateFunc         func(ctx context.Context, like *domain.Like) error
	DeleteByPairFunc   func(ctx context.Context, userID uuid.UUID, targetType domain.LikeTarget, targetID uuid.UUID) (int64, error)
	DeleteByIDFunc     func(ctx context.Context, id uuid.UUID) error
	ExistsByPairFunc   func(ctx context.Context, userID uuid.UUID, targetType domain.LikeTarget, targetID uuid.UUID) (bool, error)
	CountByTargetFunc  func(ctx context.Context, targetType domain.LikeTarget, targetID uuid.UUID) (int64, error)
	ListByUserFunc     func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Like, error)
	ListDuplicatesFunc func(ctx context.Context) ([]*domain.Like, error)

	deletedIDs []uuid.UUID
}

func (m *repoMock) Create(ctx context.Context, like *domain.Like) error {
	return m.CreateFunc(ctx, like)
}

func (m *repoMock) DeleteByPair(ctx context.Context, userID uuid.UUID, targetType domain.LikeTarget, targetID uuid.UUID) (int64, error) {
	return m.DeleteByPairFunc(ctx, userID, targetType, targetID)
}

func (m *repoMock) DeleteByID(ctx context.Context, id uuid.UUID) error {
	m.deletedIDs = append(m.deletedIDs, id)
	return m.DeleteByIDFunc(ctx, id)
}

func (m *repoMock) ExistsByPair(ctx context.Context, userID uuid.UUID, targetType domain.LikeTarget, targetID uuid.UUID) (bool, error) {
	return m.ExistsByPairFunc(ctx, userID, targetType, targetID)
}

func (m *repoMock) CountByTarget(ctx context.Context, targetType domain.LikeTarget, targetID uuid.UUID) (int64, error) {
	return m.CountByTargetFunc(ctx, targetType, targetID)
}

func (m *repoMock) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Like, error) {
	return m.ListByUserFunc(ctx, userID, limit, offset)
}

func (m *repoMock) ListDuplicates(ctx context.Context) ([]*domain.Like, error) {
	return m.ListDuplicatesFunc(ctx)
}
