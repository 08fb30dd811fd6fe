package auth

import (
	"context"
	"errors"
	"fmt"

	internalauth "github.com/communova/communova-backend/internal/auth"
	"github.com/communova/communova-backend/internal/domain"
)

// ResolveSession resolves a raw session cookie token to a principal.
// Returns domain.ErrUnauthorized when no valid, non-expired session exists.
// The principal is derived fresh on every call; role changes take effect on
// the next request without invalidating the session.
func (s *Service) ResolveSession(ctx context.Context, rawToken string) (domain.Principal, error) {
	if rawToken == "" {
		return domain.Principal{}, domain.ErrUnauthorized
	}

	session, err := s.sessions.GetByTokenHash(ctx, internalauth.HashToken(rawToken))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Principal{}, domain.ErrUnauthorized
		}
		return domain.Principal{}, fmt.Errorf("get session: %w", err)
	}

	if session.Expired(s.now()) {
		return domain.Principal{}, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Session outlived its user (account deletion).
			return domain.Principal{}, domain.ErrUnauthorized
		}
		return domain.Principal{}, fmt.Errorf("get session user: %w", err)
	}

	return domain.Principal{ID: user.ID, Role: user.Role}, nil
}

// ResolveAccessToken resolves a bearer JWT to a principal.
func (s *Service) ResolveAccessToken(token string) (domain.Principal, error) {
	userID, role, err := s.tokens.ValidateAccessToken(token)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("validate access token: %w", err)
	}
	return domain.Principal{ID: userID, Role: domain.ParseRole(role)}, nil
}

// Me returns the full user record for the current principal.
func (s *Service) Me(ctx context.Context, p domain.Principal) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}
