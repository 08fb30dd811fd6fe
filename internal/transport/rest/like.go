package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/communova/communova-backend/internal/domain"
)

type engagementService interface {
	Like(ctx context.Context, p domain.Principal, targetType domain.LikeTarget, targetID uuid.UUID) error
	Unlike(ctx context.Context, p domain.Principal, targetType domain.LikeTarget, targetID uuid.UUID) error
	CountByTarget(ctx context.Context, targetType domain.LikeTarget, targetID uuid.UUID) (int64, error)
	ListByUser(ctx context.Context, p domain.Principal, limit, offset int) ([]*domain.Like, error)
}

// LikeHandler serves like REST endpoints.
type LikeHandler struct {
	svc engagementService
	log *slog.Logger
}

// NewLikeHandler creates a LikeHandler.
func NewLikeHandler(svc engagementService, logger *slog.Logger) *LikeHandler {
	return &LikeHandler{svc: svc, log: logger.With("handler", "like")}
}

type likeRequest struct {
	TargetType string `json:"targetType"`
	TargetID   string `json:"targetId"`
}

type likeResponse struct {
	ID         string    `json:"id"`
	TargetType string    `json:"targetType"`
	TargetID   string    `json:"targetId"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (h *LikeHandler) parseTarget(w http.ResponseWriter, r *http.Request) (domain.LikeTarget, uuid.UUID, bool) {
	var req likeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return "", uuid.Nil, false
	}

	targetID, err := uuid.Parse(req.TargetID)
	if err != nil {
		handleError(w, r, h.log, domain.NewValidationError("targetId", "must be a UUID"))
		return "", uuid.Nil, false
	}

	return domain.LikeTarget(req.TargetType), targetID, true
}

// Like handles POST /likes. Liking an already-liked target succeeds without
// creating a second row.
func (h *LikeHandler) Like(w http.ResponseWriter, r *http.Request) {
	p, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	targetType, targetID, ok := h.parseTarget(w, r)
	if !ok {
		return
	}

	if err := h.svc.Like(r.Context(), p, targetType, targetID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Unlike handles DELETE /likes.
func (h *LikeHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	p, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	targetType, targetID, ok := h.parseTarget(w, r)
	if !ok {
		return
	}

	if err := h.svc.Unlike(r.Context(), p, targetType, targetID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Count handles GET /likes/count?targetType=ARTICLE&targetId=... and is
// public: like counts show on content pages for anonymous visitors too.
func (h *LikeHandler) Count(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	targetID, err := uuid.Parse(q.Get("targetId"))
	if err != nil {
		handleError(w, r, h.log, domain.NewValidationError("targetId", "must be a UUID"))
		return
	}

	count, err := h.svc.CountByTarget(r.Context(), domain.LikeTarget(q.Get("targetType")), targetID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"count": count})
}

// List handles GET /likes?limit=50&offset=0.
func (h *LikeHandler) List(w http.ResponseWriter, r *http.Request) {
	p, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	likes, err := h.svc.ListByUser(r.Context(), p, limit, offset)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]likeResponse, 0, len(likes))
	for _, l := range likes {
		out = append(out, likeResponse{
			ID:         l.ID.String(),
			TargetType: string(l.TargetType),
			TargetID:   l.TargetID.String(),
			CreatedAt:  l.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"likes": out})
}
