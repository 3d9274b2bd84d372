package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/anteater-game/server/internal/logger"
	"github.com/anteater-game/server/internal/utils"
	"github.com/anteater-game/server/models"
)

// defaultLeaderboardLimit applies when /api/scores/top is called without an
// explicit limit parameter.
const defaultLeaderboardLimit = 10

func (h *Handler) recordScore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	playerID, ok := utils.GetPlayerIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var submission models.ScoreSubmission
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	scoreID, err := h.services.ScoreService.RecordScore(ctx, playerID, submission.Score, submission.Level)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	log.Debug().Int64("score_id", scoreID).Int64("player_id", playerID).Msg("score recorded")

	utils.WriteJSON(w, map[string]int64{"score_id": scoreID}, http.StatusCreated)
}

func (h *Handler) topScores(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	limit := int64(defaultLeaderboardLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Err(err).Str("limit", raw).Msg("malformed limit parameter")
			http.Error(w, "malformed limit parameter", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	entries, err := h.services.ScoreService.TopScores(ctx, limit)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}
