package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/nightowl-labs/homedash/application/service"
	"github.com/nightowl-labs/homedash/internal/database"
)

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteError writes a JSON error response with a status derived from the
// error type.
func WriteError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	status := http.StatusInternalServerError
	message := err.Error()

	var apiErr *APIError
	var authErr *AuthenticationError

	switch {
	case errors.As(err, &apiErr):
		status = apiErr.Code()
		message = apiErr.Message()
	case errors.As(err, &authErr):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrMissingLink):
		status = http.StatusBadRequest
	case errors.Is(err, database.ErrNotFound):
		status = http.StatusNotFound
	}

	if logger != nil && status >= http.StatusInternalServerError {
		logger.Error("request error",
			"status", status,
			"error", err.Error(),
			"path", r.URL.Path,
		)
	}

	WriteJSON(w, status, ErrorResponse{Error: message})
}

// WriteJSON writes a JSON response.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
