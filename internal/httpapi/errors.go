// Package httpapi exposes the HTTP API layer of the service.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/smartsupply/provenance-tracker/internal/tracker"
)

// jsonError represents a JSON error payload.
type jsonError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// WriteJSONError writes a JSON error payload with the given status code.
func WriteJSONError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(jsonError{Error: message, Details: details})
}

// WriteDomainError maps tracker error kinds onto HTTP statuses.
func WriteDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, tracker.ErrNotFound):
		WriteJSONError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, tracker.ErrTokenMismatch):
		WriteJSONError(w, http.StatusForbidden, "token_mismatch", err.Error())
	case errors.Is(err, tracker.ErrDuplicateID):
		WriteJSONError(w, http.StatusConflict, "duplicate_id", err.Error())
	default:
		WriteJSONError(w, http.StatusInternalServerError, "internal_error", "")
	}
}
