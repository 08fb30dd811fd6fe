package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/communova/communova-backend/internal/domain"
)

// Hand-written mocks in the style of matryer/moq output, trimmed to what the
// tests use.

type userRepoMock struct {
	CreateFunc     func(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
}

func (m *userRepoMock) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	return m.CreateFunc(ctx, u)
}

func (m *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.GetByEmailFunc(ctx, email)
}

type sessionRepoMock struct {
	CreateFunc            func(ctx context.Context, s *domain.Session) error
	GetByTokenHashFunc    func(ctx context.Context, tokenHash string) (*domain.Session, error)
	DeleteByTokenHashFunc func(ctx context.Context, tokenHash string) error
	DeleteExpiredFunc     func(ctx context.Context, now time.Time) (int64, error)

	created []*domain.Session
}

func (m *sessionRepoMock) Create(ctx context.Context, s *domain.Session) error {
	m.created = append(m.created, s)
	return m.CreateFunc(ctx, s)
}

func (m *sessionRepoMock) GetByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error) {
	return m.GetByTokenHashFunc(ctx, tokenHash)
}

func (m *sessionRepoMock) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	return m.DeleteByTokenHashFunc(ctx, tokenHash)
}

func (m *sessionRepoMock) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	return m.DeleteExpiredFunc(ctx, now)
}

type tokenManagerMock struct {
	GenerateAccessTokenFunc func(userID uuid.UUID, role string) (string, error)
	ValidateAccessTokenFunc func(token string) (uuid.UUID, string, error)
}

func (m *tokenManagerMock) GenerateAccessToken(userID uuid.UUID, role string) (string, error) {
	return m.GenerateAccessTokenFunc(userID, role)
}

func (m *tokenManagerMock) ValidateAccessToken(token string) (uuid.UUID, string, error) {
	return m.ValidateAccessTokenFunc(token)
}

type txManagerMock struct{}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
