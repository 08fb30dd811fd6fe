package auth

import "github.com/communova/communova-backend/internal/domain"

// AuthResult is returned by Register and Login. The transport layer sets
// SessionToken and CSRFToken as cookies; AccessToken goes in the body for
// clients that authenticate with a bearer header instead.
type AuthResult struct {
	User         *domain.User
	SessionToken string
	CSRFToken    string
	AccessToken  string
}
