package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// GenerateSessionToken creates a cryptographically random session token.
// Returns both the raw token (set as the session cookie) and its SHA-256
// hash (stored in the sessions table).
func GenerateSessionToken() (raw string, hash string, err error) {
	raw, err = randomToken()
	if err != nil {
		return "", "", err
	}
	return raw, HashToken(raw), nil
}

// GenerateCSRFToken creates a random token for the double-submit CSRF pair.
// The token is opaque; validity is exact equality of cookie and header copy.
func GenerateCSRFToken() (string, error) {
	return randomToken()
}

// HashToken computes the SHA-256 hash of a token and returns it as a hex
// string. Session tokens are stored hashed so a database leak does not
// yield usable cookies.
func HashToken(raw string) string {
	h := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(h[:])
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
