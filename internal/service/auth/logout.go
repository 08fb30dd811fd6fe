package auth

import (
	"context"
	"errors"
	"fmt"

	internalauth "github.com/communova/communova-backend/internal/auth"
	"github.com/communova/communova-backend/internal/domain"
)

// Logout revokes the session behind the given raw cookie token.
// Idempotent: logging out an already-revoked or unknown session succeeds.
func (s *Service) Logout(ctx context.Context, rawToken string) error {
	if rawToken == "" {
		return nil
	}

	err := s.sessions.DeleteByTokenHash(ctx, internalauth.HashToken(rawToken))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}
