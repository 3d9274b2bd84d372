package http

import (
	"encoding/json"
	"net/http"

	"github.com/anteater-game/server/internal/logger"
	"github.com/anteater-game/server/internal/utils"
	"github.com/anteater-game/server/models"
)

func (h *Handler) getProgress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	playerID, ok := utils.GetPlayerIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	progress, err := h.services.ProgressService.GetProgress(ctx, playerID)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	utils.WriteJSON(w, progress, http.StatusOK)
}

func (h *Handler) setLevel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	playerID, ok := utils.GetPlayerIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var update models.LevelUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.ProgressService.SetLevel(ctx, playerID, update.Level); err != nil {
		writeServiceError(w, log, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) addAchievement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	playerID, ok := utils.GetPlayerIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var grant models.AchievementGrant
	if err := json.NewDecoder(r.Body).Decode(&grant); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.ProgressService.AddAchievement(ctx, playerID, grant.AchievementID); err != nil {
		writeServiceError(w, log, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
