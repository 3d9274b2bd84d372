package http

import (
	"net/http"
	"strconv"

	"github.com/anteater-game/server/internal/logger"
	"github.com/anteater-game/server/internal/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) promoteAdmin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	playerID, err := strconv.ParseInt(chi.URLParam(r, "playerID"), 10, 64)
	if err != nil {
		log.Err(err).Msg("malformed player id")
		http.Error(w, "malformed player id", http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.PromoteAdmin(ctx, playerID); err != nil {
		writeServiceError(w, log, err)
		return
	}

	log.Info().Int64("player_id", playerID).Msg("player promoted to admin")

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) deleteScores(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username := chi.URLParam(r, "username")

	deleted, err := h.services.ScoreService.DeleteScoresForPlayer(ctx, username)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	log.Info().Str("username", username).Int64("deleted", deleted).Msg("scores purged")

	utils.WriteJSON(w, map[string]int64{"deleted": deleted}, http.StatusOK)
}
