package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session is a cookie-backed login session. Only the SHA-256 hash of the
// session token is stored; the raw token lives in the client cookie.
type Session struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the session is past its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
