package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/backbar/barcost/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgRecipeNotFoundErr  = "Recipe not found"
	ErrMsgItemNotFoundErr    = "Item not found"
	ErrMsgInvalidRecordErr   = "Invalid record in request"
	ErrMsgUnitMismatchErr    = "Units cannot be converted"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrRecipeNotFound):
		return http.StatusNotFound, ErrMsgRecipeNotFoundErr
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundErr
	case errors.Is(err, domain.ErrInvalidRecord):
		return http.StatusBadRequest, ErrMsgInvalidRecordErr
	case errors.Is(err, domain.ErrUnitMismatch):
		return http.StatusBadRequest, ErrMsgUnitMismatchErr
	default:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
}
