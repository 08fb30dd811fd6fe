package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/communova/communova-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting
// test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with the USER role. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Name:         "Test User " + suffix,
		PasswordHash: "$2a$04$fakehashforseededuser000000000000000000000000000000000",
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.Name, user.PasswordHash, string(user.Role), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedNotification creates an unread notification for the user.
func SeedNotification(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Notification {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	n := domain.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     "Test notification " + uniqueSuffix(),
		Body:      "body",
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO notifications (id, user_id, title, body, read, created_at)
		 VALUES ($1, $2, $3, $4, false, $5)`,
		n.ID, n.UserID, n.Title, n.Body, n.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedNotification insert: %v", err)
	}

	return n
}

// SeedPayment creates a payment in the given status.
func SeedPayment(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, status domain.PaymentStatus) domain.Payment {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.Payment{
		ID:        uuid.New(),
		UserID:    userID,
		Amount:    4900,
		Currency:  "EUR",
		Purpose:   "event-ticket",
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO payments (id, user_id, amount, currency, purpose, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.UserID, p.Amount, p.Currency, p.Purpose, string(p.Status), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPayment insert: %v", err)
	}

	return p
}

// SeedLike creates a like row at the given creation time. Duplicate pairs
// are allowed; the schema carries no unique constraint.
func SeedLike(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, targetType domain.LikeTarget, targetID uuid.UUID, createdAt time.Time) domain.Like {
	t.Helper()
	ctx := context.Background()

	l := domain.Like{
		ID:         uuid.New(),
		UserID:     userID,
		TargetType: targetType,
		TargetID:   targetID,
		CreatedAt:  createdAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO likes (id, user_id, target_type, target_id, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		l.ID, l.UserID, string(l.TargetType), l.TargetID, l.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLike insert: %v", err)
	}

	return l
}
