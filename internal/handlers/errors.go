package handlers

import (
	"errors"
	"net/http"

	"marketboard/backend-go/internal/services"
)

// writeError maps the request taxonomy: missing item to 404, everything else
// that escaped the resolve/fetch path to 500 with the upstream detail kept.
func (a *API) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, services.ErrItemNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"error":   "item_not_found",
			"message": err.Error(),
		})
		return
	}

	var upErr *services.UpstreamError
	if errors.As(err, &upErr) {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error":   "upstream_error",
			"message": upErr.Error(),
			"detail": map[string]any{
				"status": upErr.Status,
				"body":   upErr.Body,
			},
		})
		return
	}

	writeJSON(w, http.StatusInternalServerError, map[string]any{
		"error":   "upstream_error",
		"message": err.Error(),
		"detail":  err.Error(),
	})
}
