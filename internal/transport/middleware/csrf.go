package middleware

import (
	"crypto/hmac"
	"net/http"

	"github.com/communova/communova-backend/pkg/ctxutil"
)

const (
	// CSRFCookieName is the cookie half of the double-submit pair. It is
	// deliberately not HttpOnly: the client must read it back into the header.
	CSRFCookieName = "communova_csrf"
	// CSRFHeaderName is the header half of the double-submit pair.
	CSRFHeaderName = "X-CSRF-Token"
)

// CSRF verifies the double-submit token pair on state-changing requests
// authenticated via session cookie. Bearer-token requests are exempt: the
// token already cannot be attached cross-site by a browser.
//
// Both cookie and header must be present and equal; comparison is constant
// time. Failure short-circuits with 403 before any handler state change.
func CSRF() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isMutating(r.Method) || !ctxutil.IsCookieAuth(r.Context()) {
				next.ServeHTTP(w, r)
				return
			}

			cookie, err := r.Cookie(CSRFCookieName)
			if err != nil || cookie.Value == "" {
				http.Error(w, "csrf token missing", http.StatusForbidden)
				return
			}

			header := r.Header.Get(CSRFHeaderName)
			if header == "" {
				http.Error(w, "csrf token missing", http.StatusForbidden)
				return
			}

			if !hmac.Equal([]byte(cookie.Value), []byte(header)) {
				http.Error(w, "csrf token mismatch", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isMutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}
