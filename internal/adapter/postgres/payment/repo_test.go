package payment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/communova/communova-backend/internal/adapter/postgres/payment"
	"github.com/communova/communova-backend/internal/adapter/postgres/testhelper"
	"github.com/communova/communova-backend/internal/domain"
	paymentsvc "github.com/communova/communova-backend/internal/service/payment"
)

func newRepo(t *testing.T) (*payment.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return payment.New(pool), pool
}

func TestRepo_UpdateStatus_Guarded(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	user := testhelper.SeedUser(t, pool)

	p := testhelper.SeedPayment(t, pool, user.ID, domain.PaymentPending)
	now := time.Now().UTC()

	// First transition wins.
	err := repo.UpdateStatus(ctx, p.ID, domain.PaymentPending, domain.PaymentSuccess, now)
	if err != nil {
		t.Fatalf("UpdateStatus: unexpected error: %v", err)
	}

	got, err := repo.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetByID: unexpected error: %v", err)
	}
	if got.Status != domain.PaymentSuccess {
		t.Errorf("status = %s, want SUCCESS", got.Status)
	}

	// Second transition from PENDING no longer matches: conflict.
	err = repo.UpdateStatus(ctx, p.ID, domain.PaymentPending, domain.PaymentFailed, now)
	if !errors.Is(err, domain.ErrConflict) {
		t.Errorf("UpdateStatus after terminal = %v, want ErrConflict", err)
	}

	// Status must be unchanged by the losing update.
	got, err = repo.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetByID: unexpected error: %v", err)
	}
	if got.Status != domain.PaymentSuccess {
		t.Errorf("status after lost race = %s, want SUCCESS", got.Status)
	}
}

func TestRepo_UpdateStatus_MissingPayment(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	err := repo.UpdateStatus(ctx, uuid.New(), domain.PaymentPending, domain.PaymentSuccess, time.Now().UTC())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("UpdateStatus for missing row = %v, want ErrNotFound", err)
	}
}

func TestRepo_List_StatusFilter(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	user := testhelper.SeedUser(t, pool)

	testhelper.SeedPayment(t, pool, user.ID, domain.PaymentPending)
	success := testhelper.SeedPayment(t, pool, user.ID, domain.PaymentSuccess)

	got, err := repo.List(ctx, paymentsvc.ListFilter{
		UserID: user.ID,
		Status: domain.PaymentSuccess,
		Limit:  10,
	})
	if err != nil {
		t.Fatalf("List: unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("List returned %d payments, want 1", len(got))
	}
	if got[0].ID != success.ID {
		t.Errorf("List returned wrong payment: got %s, want %s", got[0].ID, success.ID)
	}

	all, err := repo.List(ctx, paymentsvc.ListFilter{UserID: user.ID, Limit: 10})
	if err != nil {
		t.Fatalf("List (no filter): unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("List (no filter) returned %d payments, want 2", len(all))
	}
}

func TestRepo_GetByID_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	_, err := repo.GetByID(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetByID missing = %v, want ErrNotFound", err)
	}
}
