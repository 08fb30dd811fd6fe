package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/communova/communova-backend/internal/domain"
)

// Register creates a new account with the USER role and opens a session.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := s.now().UTC()

	// User and first session are created atomically so a failed session
	// insert does not leave an account the caller never saw.
	var result *AuthResult
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		user, err := s.users.Create(ctx, &domain.User{
			ID:           uuid.New(),
			Email:        email,
			Name:         strings.TrimSpace(input.Name),
			PasswordHash: string(hash),
			Role:         domain.RoleUser,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		result, err = s.openSession(ctx, user)
		return err
	})
	if err != nil {
		return nil, err
	}
	user := result.User

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", user.ID.String()),
	)

	return result, nil
}
