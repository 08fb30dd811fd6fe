package ctxutil

import (
	"context"

	"github.com/google/uuid"

	"github.com/communova/communova-backend/internal/domain"
)

type ctxKey string

const (
	principalKey  ctxKey = "principal"
	requestIDKey  ctxKey = "request_id"
	cookieAuthKey ctxKey = "cookie_auth"
)

// WithPrincipal stores the resolved principal in the context.
func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFromCtx extracts the principal from the context.
// Returns false if the request is anonymous.
func PrincipalFromCtx(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalKey).(domain.Principal)
	if !ok || p.ID == uuid.Nil {
		return domain.Principal{}, false
	}
	return p, true
}

// WithCookieAuth marks the context as authenticated via session cookie
// rather than a bearer token. The CSRF guard only applies to cookie auth.
func WithCookieAuth(ctx context.Context) context.Context {
	return context.WithValue(ctx, cookieAuthKey, true)
}

// IsCookieAuth reports whether the principal was resolved from a session cookie.
func IsCookieAuth(ctx context.Context) bool {
	v, _ := ctx.Value(cookieAuthKey).(bool)
	return v
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
