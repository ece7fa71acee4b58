package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/strategium/pairings/internal/models"
)

// ============================================================================
// TOURNAMENT ENDPOINTS
// ============================================================================

// CreateTournament registers a tournament with its team rosters
// @Summary Create Tournament
// @Tags Tournaments
// @Accept json
// @Produce json
// @Param body body models.CreateTournamentRequest true "Tournament"
// @Success 201 {object} models.Tournament
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /tournaments [post]
func (h *Handler) CreateTournament(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTournamentRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	t, err := h.tournament.CreateTournament(r.Context(), &req)
	if err != nil {
		h.serviceError(w, err, "Failed to create tournament", "name", req.Name)
		return
	}
	h.logger.Infow("Tournament created", "id", t.ID, "teams", len(t.Teams))
	h.jsonResponse(w, http.StatusCreated, t)
}

// GetTournaments returns list of tournaments
// @Summary List Tournaments
// @Tags Tournaments
// @Produce json
// @Success 200 {array} models.Tournament
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /tournaments [get]
func (h *Handler) GetTournaments(w http.ResponseWriter, r *http.Request) {
	list, err := h.tournament.GetTournaments(r.Context())
	if err != nil {
		h.serviceError(w, err, "Failed to get tournaments")
		return
	}
	h.jsonResponse(w, http.StatusOK, list)
}

// GetTournament returns details
// @Summary Get Tournament Details
// @Tags Tournaments
// @Produce json
// @Param id path string true "Tournament ID"
// @Success 200 {object} models.Tournament
// @Failure 404 {object} map[string]string "Not Found"
// @Router /tournaments/{id} [get]
func (h *Handler) GetTournament(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.errorResponse(w, http.StatusBadRequest, "Missing tournament ID")
		return
	}

	t, err := h.tournament.GetTournament(r.Context(), id)
	if err != nil {
		h.serviceError(w, err, "Failed to get tournament", "id", id)
		return
	}
	h.jsonResponse(w, http.StatusOK, t)
}

// GetTournamentSessions lists the pairing sessions opened in a tournament
// @Summary List Tournament Sessions
// @Tags Tournaments
// @Produce json
// @Param id path string true "Tournament ID"
// @Success 200 {array} models.Session
// @Failure 404 {object} map[string]string "Not Found"
// @Router /tournaments/{id}/sessions [get]
func (h *Handler) GetTournamentSessions(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.errorResponse(w, http.StatusBadRequest, "Missing tournament ID")
		return
	}

	if _, err := h.tournament.GetTournament(r.Context(), id); err != nil {
		h.serviceError(w, err, "Failed to get tournament", "id", id)
		return
	}
	list, err := h.session.GetTournamentSessions(r.Context(), id)
	if err != nil {
		h.serviceError(w, err, "Failed to get sessions", "id", id)
		return
	}
	h.jsonResponse(w, http.StatusOK, list)
}
