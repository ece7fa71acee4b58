package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/strategium/pairings/internal/models"
)

// ============================================================================
// PAIRING ENDPOINTS
// ============================================================================

// Optimize searches the best opening commitment for the session
// @Summary Optimize Pairing Strategy
// @Description Returns complete=false with the missing players until every roster member has submitted a matrix.
// @Tags Pairing
// @Produce json
// @Param code path string true "Session code"
// @Success 200 {object} models.OptimizeResponse
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 503 {object} map[string]string "Search capacity exhausted"
// @Router /sessions/{code}/optimize [post]
func (h *Handler) Optimize(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	resp, err := h.pairing.Optimize(r.Context(), code)
	if err != nil {
		h.serviceError(w, err, "Failed to optimize", "code", code)
		return
	}
	if resp.Complete {
		h.logger.Infow("Optimization finished",
			"code", code,
			"defender", resp.Result.BestDefender,
			"expected", resp.Result.ExpectedScore,
			"seconds", resp.Result.ComputationTime,
		)
	}
	h.jsonResponse(w, http.StatusOK, resp)
}

// Recommend answers one in-round decision
// @Summary Recommend Decision
// @Tags Pairing
// @Accept json
// @Produce json
// @Param code path string true "Session code"
// @Param body body models.RecommendationRequest true "Round state"
// @Success 200 {object} models.RecommendationResponse
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /sessions/{code}/recommend [post]
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	var req models.RecommendationRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.pairing.Recommend(r.Context(), code, &req)
	if err != nil {
		h.serviceError(w, err, "Failed to compute recommendation", "code", code, "decision", req.DecisionType)
		return
	}
	h.jsonResponse(w, http.StatusOK, resp)
}
