package payment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/communova/communova-backend/internal/domain"
)

type repoMock struct {
	CreateFunc       func(ctx context.Context, p *domain.Payment) error
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Payment, error)
	ListFunc         func(ctx context.Context, filter ListFilter) ([]*domain.Payment, error)
	UpdateStatusFunc func(ctx context.Context, id uuid.UUID, from, to domain.PaymentStatus, updatedAt time.Time) error

	statusUpdates int
}

func (m *repoMock) Create(ctx context.Context, p *domain.Payment) error {
	return m.CreateFunc(ctx, p)
}

func (m *repoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *repoMock) List(ctx context.Context, filter ListFilter) ([]*domain.Payment, error) {
	return m.ListFunc(ctx, filter)
}

func (m *repoMock) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.PaymentStatus, updatedAt time.Time) error {
	m.statusUpdates++
	return m.UpdateStatusFunc(ctx, id, from, to, updatedAt)
}
