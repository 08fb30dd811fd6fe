// Package auth implements registration, login, and per-request principal
// resolution. Sessions are opaque cookie tokens stored hashed; API clients
// can alternatively hold short-lived JWT access tokens.
package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/communova/communova-backend/internal/domain"
)

type userRepo interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type sessionRepo interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error)
	DeleteByTokenHash(ctx context.Context, tokenHash string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type tokenManager interface {
	GenerateAccessToken(userID uuid.UUID, role string) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, string, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides authentication operations.
type Service struct {
	users      userRepo
	sessions   sessionRepo
	tokens     tokenManager
	tx         txManager
	sessionTTL time.Duration
	bcryptCost int
	log        *slog.Logger
	now        func() time.Time
}

// NewService creates a new auth service.
func NewService(
	log *slog.Logger,
	users userRepo,
	sessions sessionRepo,
	tokens tokenManager,
	tx txManager,
	sessionTTL time.Duration,
	bcryptCost int,
) *Service {
	return &Service{
		users:      users,
		sessions:   sessions,
		tokens:     tokens,
		tx:         tx,
		sessionTTL: sessionTTL,
		bcryptCost: bcryptCost,
		log:        log.With("service", "auth"),
		now:        time.Now,
	}
}
