package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	internalauth "github.com/communova/communova-backend/internal/auth"
	"github.com/communova/communova-backend/internal/domain"
)

// Login verifies credentials and opens a session. Wrong email and wrong
// password collapse into the same ErrUnauthorized so the endpoint does not
// reveal which accounts exist.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	result, err := s.openSession(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID.String()),
	)

	return result, nil
}

// openSession mints the session, CSRF, and access tokens for a user.
func (s *Service) openSession(ctx context.Context, user *domain.User) (*AuthResult, error) {
	rawSession, sessionHash, err := internalauth.GenerateSessionToken()
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}

	csrfToken, err := internalauth.GenerateCSRFToken()
	if err != nil {
		return nil, fmt.Errorf("generate csrf token: %w", err)
	}

	now := s.now().UTC()
	if err := s.sessions.Create(ctx, &domain.Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: sessionHash,
		ExpiresAt: now.Add(s.sessionTTL),
		CreatedAt: now,
	}); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	accessToken, err := s.tokens.GenerateAccessToken(user.ID, user.Role.String())
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	return &AuthResult{
		User:         user,
		SessionToken: rawSession,
		CSRFToken:    csrfToken,
		AccessToken:  accessToken,
	}, nil
}
