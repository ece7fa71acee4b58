package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/strategium/pairings/internal/models"
)

// CreateSession opens a pairing round between two teams
// @Summary Create Session
// @Tags Sessions
// @Accept json
// @Produce json
// @Param body body models.CreateSessionRequest true "Session"
// @Success 201 {object} models.Session
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Unknown tournament or team"
// @Router /sessions [post]
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSessionRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	sess, err := h.session.CreateSession(r.Context(), &req)
	if err != nil {
		h.serviceError(w, err, "Failed to create session", "tournament", req.TournamentID)
		return
	}
	h.logger.Infow("Session created", "code", sess.Code, "round", sess.RoundNumber)
	h.jsonResponse(w, http.StatusCreated, sess)
}

// GetSession returns a session by code
// @Summary Get Session
// @Tags Sessions
// @Produce json
// @Param code path string true "Session code"
// @Success 200 {object} models.Session
// @Failure 404 {object} map[string]string "Not Found"
// @Router /sessions/{code} [get]
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	sess, err := h.session.GetSession(r.Context(), code)
	if err != nil {
		h.serviceError(w, err, "Failed to get session", "code", code)
		return
	}
	h.jsonResponse(w, http.StatusOK, sess)
}

// SubmitMatrix stores one player's predicted scores
// @Summary Submit Matrix
// @Description Replaces the player's matrix. Scores must lie in [0, 20].
// @Tags Sessions
// @Accept json
// @Produce json
// @Param code path string true "Session code"
// @Param body body models.MatrixInput true "Matrix"
// @Success 200 {object} models.MatrixSubmitted
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /sessions/{code}/matrix [post]
func (h *Handler) SubmitMatrix(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	var in models.MatrixInput
	if !h.decodeJSON(w, r, &in) {
		return
	}

	if _, err := h.session.GetSession(r.Context(), code); err != nil {
		h.serviceError(w, err, "Failed to get session", "code", code)
		return
	}
	total, err := h.matrix.SubmitMatrix(r.Context(), code, &in)
	if err != nil {
		h.serviceError(w, err, "Failed to store matrix", "code", code, "player", in.PlayerName)
		return
	}
	h.jsonResponse(w, http.StatusOK, models.MatrixSubmitted{
		Message:        "Matrix submitted successfully",
		Player:         in.PlayerName,
		TotalSubmitted: total,
	})
}

// GetMatrices lists every matrix submitted to a session
// @Summary Get Matrices
// @Tags Sessions
// @Produce json
// @Param code path string true "Session code"
// @Success 200 {object} models.SessionMatrices
// @Failure 404 {object} map[string]string "Not Found"
// @Router /sessions/{code}/matrices [get]
func (h *Handler) GetMatrices(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if _, err := h.session.GetSession(r.Context(), code); err != nil {
		h.serviceError(w, err, "Failed to get session", "code", code)
		return
	}

	matrices, err := h.matrix.GetMatrices(r.Context(), code)
	if err != nil {
		h.serviceError(w, err, "Failed to load matrices", "code", code)
		return
	}
	h.jsonResponse(w, http.StatusOK, models.SessionMatrices{
		SessionCode:    code,
		Matrices:       matrices,
		SubmittedCount: len(matrices),
	})
}
