// Package authz holds the ownership-or-admin authorization policy.
//
// The evaluator is a pure decision function: callers load the target entity
// first and pass its owner id. It holds no state and performs no I/O.
package authz

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/communova/communova-backend/internal/domain"
)

// Authorize allows mutation of a resource iff the principal owns it or has
// the admin role. Returns domain.ErrForbidden otherwise.
func Authorize(p domain.Principal, ownerID uuid.UUID) error {
	if p.ID == ownerID || p.Role == domain.RoleAdmin {
		return nil
	}
	return fmt.Errorf("user %s is not owner of resource owned by %s: %w",
		p.ID, ownerID, domain.ErrForbidden)
}

// RequireAdmin allows only principals with the admin role.
func RequireAdmin(p domain.Principal) error {
	if p.Role != domain.RoleAdmin {
		return fmt.Errorf("role %s: %w", p.Role, domain.ErrForbidden)
	}
	return nil
}
