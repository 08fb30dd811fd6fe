package notification

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/communova/communova-backend/internal/domain"
)

type repoMock struct {
	CreateFunc      func(ctx context.Context, n *domain.Notification) error
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Notification, error)
	ListFunc        func(ctx context.Context, filter ListFilter) ([]*domain.Notification, error)
	UpdateFunc      func(ctx context.Context, n *domain.Notification) error
	MarkAllReadFunc func(ctx context.Context, userID uuid.UUID, readAt time.Time) (int64, error)
	DeleteFunc      func(ctx context.Context, id uuid.UUID) error

	updates int
}

func (m *repoMock) Create(ctx context.Context, n *domain.Notification) error {
	return m.CreateFunc(ctx, n)
}

func (m *repoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *repoMock) List(ctx context.Context, filter ListFilter) ([]*domain.Notification, error) {
	return m.ListFunc(ctx, filter)
}

func (m *repoMock) Update(ctx context.Context, n *domain.Notification) error {
	m.updates++
	return m.UpdateFunc(ctx, n)
}

func (m *repoMock) MarkAllRead(ctx context.Context, userID uuid.UUID, readAt time.Time) (int64, error) {
	return m.MarkAllReadFunc(ctx, userID, readAt)
}

func (m *repoMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}
