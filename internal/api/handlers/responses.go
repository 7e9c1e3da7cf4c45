// filepath: internal/api/handlers/responses.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"daylog/internal/logging"
	"daylog/internal/shared"
)

// ErrorResponse is a standard format for API error messages.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a standard format for simple API messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// respondWithError sends a JSON error response.
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, `{"error":"Failed to marshal JSON response"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// respondWithServiceError maps the shared error sentinels onto HTTP status
// codes. Anything unrecognized is logged and reported as a 500.
func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shared.ErrValidation):
		respondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, shared.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, shared.ErrUserExists):
		respondWithError(w, http.StatusConflict, "Username already taken")
	case errors.Is(err, shared.ErrDayExists):
		respondWithError(w, http.StatusConflict, "A day with this date already exists")
	case errors.Is(err, shared.ErrWrongPassword):
		respondWithError(w, http.StatusConflict, "Current password is incorrect")
	case errors.Is(err, shared.ErrPasswordMismatch):
		respondWithError(w, http.StatusConflict, "New password and confirmation do not match")
	case errors.Is(err, shared.ErrInvalidCredentials):
		respondWithError(w, http.StatusUnauthorized, "Invalid Credentials")
	case errors.Is(err, shared.ErrLastAdmin):
		respondWithError(w, http.StatusNotAcceptable, "Cannot demote the last admin")
	default:
		logging.Log.Errorf("Unhandled service error: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
