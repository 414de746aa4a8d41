package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"taproom/internal/server/repository"
	"taproom/internal/shared/models"
)

// decodeJSON reads the body into v, writing the failure response itself.
// Returns false when the caller should stop.
func (r *Router) decodeJSON(w http.ResponseWriter, req *http.Request, v any) bool {
	if r.maxRequestBytes > 0 {
		req.Body = http.MaxBytesReader(w, req.Body, r.maxRequestBytes)
	}
	if err := json.NewDecoder(req.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "empty body"})
			return false
		}
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "request entity too large"})
			return false
		}
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return false
	}
	return true
}

func writeValidationError(w http.ResponseWriter, fe models.FieldErrors) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"error":  "validation failed",
		"fields": fe,
	})
}

func (r *Router) writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}
	if r.logger != nil {
		r.logger.Printf("internal error: %v", err)
	}
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
}
