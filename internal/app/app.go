package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/communova/communova-backend/internal/adapter/postgres"
	likerepo "github.com/communova/communova-backend/internal/adapter/postgres/like"
	notificationrepo "github.com/communova/communova-backend/internal/adapter/postgres/notification"
	paymentrepo "github.com/communova/communova-backend/internal/adapter/postgres/payment"
	sessionrepo "github.com/communova/communova-backend/internal/adapter/postgres/session"
	userrepo "github.com/communova/communova-backend/internal/adapter/postgres/user"
	jwtauth "github.com/communova/communova-backend/internal/auth"
	"github.com/communova/communova-backend/internal/config"
	"github.com/communova/communova-backend/internal/ratelimit"
	authsvc "github.com/communova/communova-backend/internal/service/auth"
	"github.com/communova/communova-backend/internal/service/engagement"
	notificationsvc "github.com/communova/communova-backend/internal/service/notification"
	paymentsvc "github.com/communova/communova-backend/internal/service/payment"
	"github.com/communova/communova-backend/internal/transport/middleware"
	"github.com/communova/communova-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database and the rate-limit counter store, wires repositories into
// services and services into HTTP handlers, and serves until the context is
// cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	store, closeStore, err := newRateLimitStore(ctx, cfg.Redis, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	users := userrepo.New(pool)
	sessions := sessionrepo.New(pool)
	notifications := notificationrepo.New(pool)
	payments := paymentrepo.New(pool)
	likes := likerepo.New(pool)

	tokens := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	txm := postgres.NewTxManager(pool)

	authService := authsvc.NewService(logger, users, sessions, tokens, txm, cfg.Auth.SessionTTL, cfg.Auth.BcryptCost)
	notificationService := notificationsvc.NewService(logger, notifications)
	paymentService := paymentsvc.NewService(logger, payments)
	engagementService := engagement.NewService(logger, likes)

	apiLimiter := ratelimit.New(store, ratelimit.Config{
		Route:    "api",
		Window:   cfg.RateLimit.Window,
		Max:      cfg.RateLimit.Max,
		FailOpen: cfg.RateLimit.FailOpen,
	}, logger)
	authLimiter := ratelimit.New(store, ratelimit.Config{
		Route:    "auth",
		Window:   cfg.RateLimit.AuthWindow,
		Max:      cfg.RateLimit.AuthMax,
		FailOpen: cfg.RateLimit.FailOpen,
	}, logger)

	router := rest.NewRouter(rest.RouterDeps{
		Log:           logger,
		CORS:          cfg.CORS,
		Resolver:      authService,
		KeyFn:         middleware.ClientKey(cfg.Server.TrustForwardedFor),
		APILimiter:    apiLimiter,
		AuthLimiter:   authLimiter,
		Auth:          rest.NewAuthHandler(authService, cfg.Auth.SessionTTL, cfg.Auth.SecureCookies, logger),
		Notifications: rest.NewNotificationHandler(notificationService, logger),
		Payments:      rest.NewPaymentHandler(paymentService, cfg.Payment.GatewaySecret, logger),
		Likes:         rest.NewLikeHandler(engagementService, logger),
		Health:        rest.NewHealthHandler(pool, BuildVersion()),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		<-ctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", slog.String("error", err.Error()))
		}
	}()

	logger.Info("http server listening", slog.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}

	logger.Info("stopped")
	return nil
}

// newRateLimitStore picks the counter store. With a Redis address configured
// the limit is shared across instances; without one a per-process in-memory
// store is used, which is fine for a single replica.
func newRateLimitStore(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) (ratelimit.Store, func(), error) {
	if cfg.Addr == "" {
		logger.Info("rate limiting using in-memory store")
		mem := ratelimit.NewMemoryStore(time.Minute)
		return mem, mem.Stop, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, fmt.Errorf("redis ping: %w", err)
	}

	logger.Info("rate limiting using redis store", slog.String("addr", cfg.Addr))
	return ratelimit.NewRedisStore(rdb, "ratelimit"), func() { _ = rdb.Close() }, nil
}
