package httptransport

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"bookstand/internal/auth"
	dErrors "bookstand/pkg/domain-errors"
	"bookstand/pkg/platform/httputil"
)

// upsertReviewRequest is the structured payload for review writes. The acting
// username is never part of it; it comes from the authorization gate.
type upsertReviewRequest struct {
	Review string `json:"review"`
}

func (h *Handler) handleUpsertReview(w http.ResponseWriter, r *http.Request) {
	isbn := chi.URLParam(r, "isbn")
	username := auth.GetUsername(r.Context())

	var req upsertReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	res, err := h.reviews.Upsert(r.Context(), isbn, username, req.Review)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) handleGetReviews(w http.ResponseWriter, r *http.Request) {
	isbn := chi.URLParam(r, "isbn")

	res, err := h.reviews.Get(r.Context(), isbn)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, res)
}
