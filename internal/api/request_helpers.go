package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/concentration/internal/platform/logger"
	"github.com/phrazzld/concentration/internal/store"
)

// getPathUUID extracts and parses a UUID path parameter.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, fmt.Errorf("%w: %s is required", ErrInvalidSessionID, paramName)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidSessionID, err)
	}
	return id, nil
}

// loadSession resolves the {id} path parameter to a stored session. It
// writes the error response itself and returns false when that fails.
func (h *GameHandler) loadSession(w http.ResponseWriter, r *http.Request) (*store.Session, bool) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathUUID(r, "id")
	if err != nil {
		log.Debug("invalid game id", slog.String("value", chi.URLParam(r, "id")))
		HandleAPIError(w, r, err, "")
		return nil, false
	}

	sess, err := h.store.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load game")
		return nil, false
	}
	return sess, true
}
