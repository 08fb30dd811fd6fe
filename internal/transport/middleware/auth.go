package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/communova/communova-backend/internal/domain"
	"github.com/communova/communova-backend/pkg/ctxutil"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "communova_session"

// PrincipalResolver turns raw credentials into a principal.
type PrincipalResolver interface {
	// ResolveSession resolves a raw session cookie token to a principal.
	ResolveSession(ctx context.Context, rawToken string) (domain.Principal, error)
	// ResolveAccessToken resolves a bearer JWT to a principal.
	ResolveAccessToken(token string) (domain.Principal, error)
}

// Auth resolves the request to a principal, from a bearer access token or a
// session cookie, and stores it in the context. Requests without credentials
// pass through anonymous; protected operations reject those downstream.
//
// An invalid bearer token is rejected outright (the client explicitly sent a
// credential that failed). An invalid or expired session cookie is treated
// as anonymous, since stale cookies linger in browsers long after logout.
func Auth(resolver PrincipalResolver, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := extractBearerToken(r); token != "" {
				p, err := resolver.ResolveAccessToken(token)
				if err != nil {
					http.Error(w, "unauthorized", http.StatusUnauthorized)
					return
				}
				next.ServeHTTP(w, r.WithContext(ctxutil.WithPrincipal(r.Context(), p)))
				return
			}

			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}

			p, err := resolver.ResolveSession(r.Context(), cookie.Value)
			if err != nil {
				if !errors.Is(err, domain.ErrUnauthorized) {
					logger.WarnContext(r.Context(), "session resolution failed",
						slog.String("error", err.Error()),
					)
				}
				next.ServeHTTP(w, r) // Anonymous
				return
			}

			ctx := ctxutil.WithPrincipal(r.Context(), p)
			ctx = ctxutil.WithCookieAuth(ctx)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
