package rest

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/communova/communova-backend/internal/config"
	"github.com/communova/communova-backend/internal/ratelimit"
	"github.com/communova/communova-backend/internal/transport/middleware"
)

// RouterDeps bundles everything the router needs.
type RouterDeps struct {
	Log      *slog.Logger
	CORS     config.CORSConfig
	Resolver middleware.PrincipalResolver
	KeyFn    middleware.KeyFunc

	// APILimiter guards the general API; AuthLimiter guards login and
	// register with a tighter budget since they are credential-guessing
	// targets.
	APILimiter  *ratelimit.Limiter
	AuthLimiter *ratelimit.Limiter

	Auth          *AuthHandler
	Notifications *NotificationHandler
	Payments      *PaymentHandler
	Likes         *LikeHandler
	Health        *HealthHandler
}

// NewRouter assembles the HTTP routes and middleware. Every API request
// passes Recovery, RequestID, Logger, and CORS; API routes additionally get
// rate limiting, principal resolution, and the CSRF guard, in that order.
// Health probes bypass the API chain so orchestrators are never throttled.
func NewRouter(deps RouterDeps) http.Handler {
	r := mux.NewRouter()

	r.Use(
		mux.MiddlewareFunc(middleware.Recovery(deps.Log)),
		mux.MiddlewareFunc(middleware.RequestID()),
		mux.MiddlewareFunc(middleware.Logger(deps.Log)),
		mux.MiddlewareFunc(middleware.CORS(deps.CORS)),
	)

	r.HandleFunc("/live", deps.Health.Live).Methods(http.MethodGet)
	r.HandleFunc("/ready", deps.Health.Ready).Methods(http.MethodGet)
	r.HandleFunc("/health", deps.Health.Health).Methods(http.MethodGet)

	// Login and register sit on their own subrouter with the tighter
	// limiter. Logout and me share the general API budget.
	authn := r.PathPrefix("/api/v1/auth").Subrouter()
	authn.Use(mux.MiddlewareFunc(middleware.Chain(
		middleware.RateLimit(deps.AuthLimiter, deps.KeyFn),
		middleware.Auth(deps.Resolver, deps.Log),
		middleware.CSRF(),
	)))
	authn.HandleFunc("/register", deps.Auth.Register).Methods(http.MethodPost)
	authn.HandleFunc("/login", deps.Auth.Login).Methods(http.MethodPost)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(mux.MiddlewareFunc(middleware.Chain(
		middleware.RateLimit(deps.APILimiter, deps.KeyFn),
		middleware.Auth(deps.Resolver, deps.Log),
		middleware.CSRF(),
	)))

	api.HandleFunc("/auth/logout", deps.Auth.Logout).Methods(http.MethodPost)
	api.HandleFunc("/auth/me", deps.Auth.Me).Methods(http.MethodGet)
	api.HandleFunc("/auth/csrf", deps.Auth.MintCSRF).Methods(http.MethodGet)

	api.HandleFunc("/notifications", deps.Notifications.List).Methods(http.MethodGet)
	api.HandleFunc("/notifications/read-all", deps.Notifications.MarkAllRead).Methods(http.MethodPost)
	api.HandleFunc("/notifications/{id}/read", deps.Notifications.MarkRead).Methods(http.MethodPatch)
	api.HandleFunc("/notifications/{id}", deps.Notifications.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/payments", deps.Payments.Create).Methods(http.MethodPost)
	api.HandleFunc("/payments", deps.Payments.List).Methods(http.MethodGet)
	api.HandleFunc("/payments/{id}", deps.Payments.Get).Methods(http.MethodGet)
	api.HandleFunc("/payments/{id}/callback", deps.Payments.GatewayCallback).Methods(http.MethodPost)

	api.HandleFunc("/likes", deps.Likes.Like).Methods(http.MethodPost)
	api.HandleFunc("/likes", deps.Likes.Unlike).Methods(http.MethodDelete)
	api.HandleFunc("/likes", deps.Likes.List).Methods(http.MethodGet)
	api.HandleFunc("/likes/count", deps.Likes.Count).Methods(http.MethodGet)

	api.HandleFunc("/admin/notifications", deps.Notifications.Create).Methods(http.MethodPost)
	api.HandleFunc("/admin/payments/{id}/verify", deps.Payments.MarkVerified).Methods(http.MethodPost)

	return r
}
