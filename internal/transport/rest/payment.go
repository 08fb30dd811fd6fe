package rest

import (
	"context"
	"crypto/hmac"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/communova/communova-backend/internal/domain"
	"github.com/communova/communova-backend/internal/service/payment"
)

// GatewayTokenHeader carries the shared secret that authenticates payment
// gateway callbacks. The gateway is an external system with no session, so
// the callback endpoint authenticates it directly instead of resolving a
// principal.
const GatewayTokenHeader = "X-Gateway-Token"

type paymentService interface {
	Create(ctx context.Context, p domain.Principal, input payment.CreateInput) (*domain.Payment, error)
	Get(ctx context.Context, p domain.Principal, id uuid.UUID) (*domain.Payment, error)
	List(ctx context.Context, p domain.Principal, status domain.PaymentStatus, limit, offset int) ([]*domain.Payment, error)
	ApplyGatewayResult(ctx context.Context, id uuid.UUID, target domain.PaymentStatus) (*domain.Payment, error)
	MarkVerified(ctx context.Context, p domain.Principal, id uuid.UUID) (*domain.Payment, error)
}

// PaymentHandler serves payment REST endpoints.
type PaymentHandler struct {
	svc           paymentService
	gatewaySecret string
	log           *slog.Logger
}

// NewPaymentHandler creates a PaymentHandler.
func NewPaymentHandler(svc paymentService, gatewaySecret string, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{
		svc:           svc,
		gatewaySecret: gatewaySecret,
		log:           logger.With("handler", "payment"),
	}
}

type createPaymentRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Purpose  string `json:"purpose"`
}

type gatewayCallbackRequest struct {
	Result string `json:"result"`
}

type paymentResponse struct {
	ID        string    `json:"id"`
	Amount    int64     `json:"amount"`
	Currency  string    `json:"currency"`
	Purpose   string    `json:"purpose"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Create handles POST /payments.
func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	p, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	var req createPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), p, payment.CreateInput{
		Amount:   req.Amount,
		Currency: req.Currency,
		Purpose:  req.Purpose,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPaymentResponse(created))
}

// Get handles GET /payments/{id}.
func (h *PaymentHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	got, err := h.svc.Get(r.Context(), p, id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPaymentResponse(got))
}

// List handles GET /payments?status=SUCCESS&limit=50&offset=0.
func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	p, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	items, err := h.svc.List(r.Context(), p, domain.PaymentStatus(q.Get("status")), limit, offset)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]paymentResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toPaymentResponse(item))
	}
	writeJSON(w, http.StatusOK, map[string]any{"payments": out})
}

// GatewayCallback handles POST /payments/{id}/callback. The caller must
// present the shared gateway secret; without it any party knowing a payment
// id could forge a SUCCESS result. Gateways retry this endpoint; a callback
// for an already-resolved payment returns the current state with 200 instead
// of an error.
func (h *PaymentHandler) GatewayCallback(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get(GatewayTokenHeader)
	if token == "" || !hmac.Equal([]byte(token), []byte(h.gatewaySecret)) {
		h.log.WarnContext(r.Context(), "gateway callback rejected",
			slog.String("path", r.URL.Path),
			slog.Bool("token_present", token != ""),
		)
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req gatewayCallbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	got, err := h.svc.ApplyGatewayResult(r.Context(), id, domain.PaymentStatus(req.Result))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPaymentResponse(got))
}

// MarkVerified handles POST /admin/payments/{id}/verify.
func (h *PaymentHandler) MarkVerified(w http.ResponseWriter, r *http.Request) {
	p, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	got, err := h.svc.MarkVerified(r.Context(), p, id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPaymentResponse(got))
}

func toPaymentResponse(p *domain.Payment) paymentResponse {
	return paymentResponse{
		ID:        p.ID.String(),
		Amount:    p.Amount,
		Currency:  p.Currency,
		Purpose:   p.Purpose,
		Status:    string(p.Status),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
