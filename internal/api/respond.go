// Package api holds small helpers shared by the HTTP handlers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"restaurant-pos/internal/logger"
	"restaurant-pos/internal/models"
)

// ErrorResponse is the error payload shape of every endpoint.
type ErrorResponse struct {
	Message string `json:"message"`
}

// WriteJSON writes a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, data interface{}, log *logger.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error("response_encoding_failed", "", "Failed to encode JSON response", err, nil)
	}
}

// WriteError writes an error payload with the given status.
func WriteError(w http.ResponseWriter, status int, message string, log *logger.Logger) {
	WriteJSON(w, status, ErrorResponse{Message: message}, log)
}

// WriteServiceError maps a service error onto the HTTP taxonomy:
// invalid argument 400, not found 404, anything else 500.
func WriteServiceError(w http.ResponseWriter, err error, log *logger.Logger) {
	switch {
	case errors.Is(err, models.ErrInvalidArgument):
		WriteError(w, http.StatusBadRequest, err.Error(), log)
	case errors.Is(err, models.ErrNotFound):
		WriteError(w, http.StatusNotFound, err.Error(), log)
	default:
		WriteError(w, http.StatusInternalServerError, err.Error(), log)
	}
}
