package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/communova/communova-backend/internal/ratelimit"
)

// KeyFunc derives the rate-limit client key from a request.
type KeyFunc func(r *http.Request) string

// ClientKey returns a KeyFunc keyed by client IP. The first X-Forwarded-For
// hop is used only when the deployment trusts its proxy. Rate limiting runs
// before authentication, so the key never depends on a principal.
func ClientKey(trustXFF bool) KeyFunc {
	return func(r *http.Request) string {
		if trustXFF {
			if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
				if ip := strings.TrimSpace(strings.Split(xff, ",")[0]); ip != "" {
					return ip
				}
			}
		}

		host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
		if err == nil && host != "" {
			return host
		}
		if r.RemoteAddr != "" {
			return r.RemoteAddr
		}
		return "unknown"
	}
}

// RateLimit returns middleware that checks each request against the given
// fixed-window limiter. Denied requests get 429 with a Retry-After hint.
func RateLimit(limiter *ratelimit.Limiter, keyFn KeyFunc) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			dec := limiter.Check(r.Context(), keyFn(r))
			if !dec.Allowed {
				if dec.RetryAfter > 0 {
					seconds := int(math.Ceil(dec.RetryAfter.Seconds()))
					w.Header().Set("Retry-After", strconv.Itoa(seconds))
				}
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
