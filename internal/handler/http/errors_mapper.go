package http

import (
	"errors"
	"net/http"

	"github.com/anteater-game/server/internal/logger"
	"github.com/anteater-game/server/internal/service"
)

// statusForServiceErr translates service-layer sentinels into HTTP status
// codes. Anything unrecognised is an internal error.
func statusForServiceErr(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrInvalidLimit):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrUnknownPlayer):
		return http.StatusNotFound
	case errors.Is(err, service.ErrDuplicateUsername):
		return http.StatusConflict
	case errors.Is(err, service.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError logs the failure and writes the mapped status. Sentinel
// errors surface their message; internal errors only the status text, so no
// storage details leak to clients.
func writeServiceError(w http.ResponseWriter, log *logger.Logger, err error) {
	status := statusForServiceErr(err)

	log.Err(err).Int("status", status).Msg("request failed")

	switch status {
	case http.StatusInternalServerError, http.StatusServiceUnavailable:
		http.Error(w, http.StatusText(status), status)
	default:
		http.Error(w, err.Error(), status)
	}
}
