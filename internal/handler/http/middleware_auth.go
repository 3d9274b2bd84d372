// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, tracing, and request logging are all
// handled at this layer before requests are forwarded to the service layer.
package http

import (
	"context"
	"net/http"

	"github.com/anteater-game/server/internal/logger"
	"github.com/anteater-game/server/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and — on success — stores
// the authenticated player's ID in the request context under
// [utils.PlayerIDCtxKey] before delegating to the next handler.
//
// Requests are rejected with HTTP 401 Unauthorized when the header is absent
// or malformed, or when the token is expired or otherwise invalid.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		// Store the authenticated player's ID in the context so that
		// downstream handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.PlayerIDCtxKey, token.PlayerID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// adminOnly rejects authenticated players that do not carry the
// administrator flag. Must be mounted after auth.
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		playerID, ok := utils.GetPlayerIDFromContext(r.Context())
		if !ok {
			log.Error().Msg("admin check without authenticated player")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		isAdmin, err := h.services.AuthService.IsAdmin(r.Context(), playerID)
		if err != nil {
			writeServiceError(w, log, err)
			return
		}
		if !isAdmin {
			log.Error().Int64("player_id", playerID).Msg("admin route denied")
			http.Error(w, ErrAdminRequired.Error(), http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
