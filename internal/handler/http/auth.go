package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/anteater-game/server/internal/logger"
	"github.com/anteater-game/server/internal/utils"
	"github.com/anteater-game/server/models"
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	playerID, err := h.services.AuthService.SignUp(ctx, creds.Username, creds.Password)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	log.Debug().Int64("id", playerID).Str("username", creds.Username).Msg("player registered")

	token, err := h.services.AuthService.CreateToken(ctx, playerID)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	playerID, err := h.services.AuthService.Login(ctx, creds.Username, creds.Password)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	log.Debug().Int64("id", playerID).Msg("player successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, playerID)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) changeCredentials(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	playerID, ok := utils.GetPlayerIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var update models.CredentialsUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.ChangeCredentials(ctx, playerID, update.NewUsername, update.NewPassword); err != nil {
		writeServiceError(w, log, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	playerID, ok := utils.GetPlayerIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.services.AuthService.DeleteAccount(ctx, playerID); err != nil {
		writeServiceError(w, log, err)
		return
	}

	log.Debug().Int64("id", playerID).Msg("player account deleted")

	w.WriteHeader(http.StatusNoContent)
}
