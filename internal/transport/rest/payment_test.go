package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/communova/communova-backend/internal/domain"
	"github.com/communova/communova-backend/pkg/ctxutil"
)

const testGatewaySecret = "test-gateway-secret-32-chars-long!!"

func withVars(r *http.Request, vars map[string]string) *http.Request {
	return mux.SetURLVars(r, vars)
}

func TestPaymentHandler_GatewayCallback(t *testing.T) {
	t.Parallel()

	paymentID := uuid.New()
	resolved := &domain.Payment{
		ID:        paymentID,
		UserID:    uuid.New(),
		Amount:    4900,
		Currency:  "EUR",
		Purpose:   "event-ticket",
		Status:    domain.PaymentSuccess,
		UpdatedAt: time.Now().UTC(),
	}

	t.Run("applies result", func(t *testing.T) {
		var gotTarget domain.PaymentStatus
		svc := &paymentServiceMock{
			ApplyGatewayResultFunc: func(ctx context.Context, id uuid.UUID, target domain.PaymentStatus) (*domain.Payment, error) {
				require.Equal(t, paymentID, id)
				gotTarget = target
				return resolved, nil
			},
		}
		h := NewPaymentHandler(svc, testGatewaySecret, testLogger())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/"+paymentID.String()+"/callback",
			strings.NewReader(`{"result":"SUCCESS"}`))
		req.Header.Set(GatewayTokenHeader, testGatewaySecret)
		req = withVars(req, map[string]string{"id": paymentID.String()})
		rec := httptest.NewRecorder()

		h.GatewayCallback(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, domain.PaymentSuccess, gotTarget)
		assert.Contains(t, rec.Body.String(), `"status":"SUCCESS"`)
	})

	t.Run("invalid result is 400", func(t *testing.T) {
		svc := &paymentServiceMock{
			ApplyGatewayResultFunc: func(ctx context.Context, id uuid.UUID, target domain.PaymentStatus) (*domain.Payment, error) {
				return nil, domain.NewValidationError("result", "unknown value")
			},
		}
		h := NewPaymentHandler(svc, testGatewaySecret, testLogger())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/"+paymentID.String()+"/callback",
			strings.NewReader(`{"result":"REFUNDED"}`))
		req.Header.Set(GatewayTokenHeader, testGatewaySecret)
		req = withVars(req, map[string]string{"id": paymentID.String()})
		rec := httptest.NewRecorder()

		h.GatewayCallback(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing gateway token is 401", func(t *testing.T) {
		called := false
		svc := &paymentServiceMock{
			ApplyGatewayResultFunc: func(ctx context.Context, id uuid.UUID, target domain.PaymentStatus) (*domain.Payment, error) {
				called = true
				return resolved, nil
			},
		}
		h := NewPaymentHandler(svc, testGatewaySecret, testLogger())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/"+paymentID.String()+"/callback",
			strings.NewReader(`{"result":"SUCCESS"}`))
		req = withVars(req, map[string]string{"id": paymentID.String()})
		rec := httptest.NewRecorder()

		h.GatewayCallback(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, called, "payment state must not change without the gateway token")
	})

	t.Run("wrong gateway token is 401", func(t *testing.T) {
		called := false
		svc := &paymentServiceMock{
			ApplyGatewayResultFunc: func(ctx context.Context, id uuid.UUID, target domain.PaymentStatus) (*domain.Payment, error) {
				called = true
				return resolved, nil
			},
		}
		h := NewPaymentHandler(svc, testGatewaySecret, testLogger())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/"+paymentID.String()+"/callback",
			strings.NewReader(`{"result":"SUCCESS"}`))
		req.Header.Set(GatewayTokenHeader, "guessed-token")
		req = withVars(req, map[string]string{"id": paymentID.String()})
		rec := httptest.NewRecorder()

		h.GatewayCallback(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, called)
	})

	t.Run("bad id is 400", func(t *testing.T) {
		h := NewPaymentHandler(&paymentServiceMock{}, testGatewaySecret, testLogger())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/nope/callback", nil)
		req.Header.Set(GatewayTokenHeader, testGatewaySecret)
		req = withVars(req, map[string]string{"id": "nope"})
		rec := httptest.NewRecorder()

		h.GatewayCallback(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPaymentHandler_Get(t *testing.T) {
	t.Parallel()

	owner := domain.Principal{ID: uuid.New(), Role: domain.RoleUser}
	paymentID := uuid.New()

	t.Run("forbidden maps to 403", func(t *testing.T) {
		svc := &paymentServiceMock{
			GetFunc: func(ctx context.Context, p domain.Principal, id uuid.UUID) (*domain.Payment, error) {
				return nil, domain.ErrForbidden
			},
		}
		h := NewPaymentHandler(svc, testGatewaySecret, testLogger())

		ctx := ctxutil.WithPrincipal(context.Background(), owner)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/payments/"+paymentID.String(), nil).WithContext(ctx)
		req = withVars(req, map[string]string{"id": paymentID.String()})
		rec := httptest.NewRecorder()

		h.Get(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing maps to 404", func(t *testing.T) {
		svc := &paymentServiceMock{
			GetFunc: func(ctx context.Context, p domain.Principal, id uuid.UUID) (*domain.Payment, error) {
				return nil, domain.ErrNotFound
			},
		}
		h := NewPaymentHandler(svc, testGatewaySecret, testLogger())

		ctx := ctxutil.WithPrincipal(context.Background(), owner)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/payments/"+paymentID.String(), nil).WithContext(ctx)
		req = withVars(req, map[string]string{"id": paymentID.String()})
		rec := httptest.NewRecorder()

		h.Get(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("anonymous is 401", func(t *testing.T) {
		h := NewPaymentHandler(&paymentServiceMock{}, testGatewaySecret, testLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/payments/"+paymentID.String(), nil)
		rec := httptest.NewRecorder()

		h.Get(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
