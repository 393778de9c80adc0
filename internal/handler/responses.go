package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/aldenjg/cornharvest/internal/domain"
	"github.com/aldenjg/cornharvest/internal/logger"
)

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
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode before writing headers so a failure can still become a 500.
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		logger.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgSessionNotFound     = "Session not found. It may have expired."
	ErrMsgGameOver            = "This game is over. Start a new session."
	ErrMsgNotEnoughMoney      = "Not enough money for that order"
	ErrMsgEmptyOrder          = "Choose at least one item to buy"
	ErrMsgInvalidQuantityUser = "Quantities must be between 0 and 100"
	ErrMsgUnknownItemUser     = "Unknown item"
	ErrMsgUnknownActionUser   = "Unknown action"
	ErrMsgNoActionUser        = "Select an action first"
	ErrMsgPlotOutOfRangeUser  = "That plot is not on the farm"
)

// mapServiceErrorToUserMessage maps domain errors to HTTP statuses and
// player-facing messages.
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound, ErrMsgSessionNotFound
	case errors.Is(err, domain.ErrGameOver):
		return http.StatusConflict, ErrMsgGameOver
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughMoney
	case errors.Is(err, domain.ErrEmptyPurchase):
		return http.StatusBadRequest, ErrMsgEmptyOrder
	case errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusBadRequest, ErrMsgInvalidQuantityUser
	case errors.Is(err, domain.ErrUnknownItem):
		return http.StatusBadRequest, ErrMsgUnknownItemUser
	case errors.Is(err, domain.ErrUnknownAction):
		return http.StatusBadRequest, ErrMsgUnknownActionUser
	case errors.Is(err, domain.ErrNoActionSelected):
		return http.StatusBadRequest, ErrMsgNoActionUser
	case errors.Is(err, domain.ErrPlotOutOfRange):
		return http.StatusBadRequest, ErrMsgPlotOutOfRangeUser
	case errors.Is(err, domain.ErrMissingSupplies):
		// The wrapped text is already player-facing.
		return http.StatusBadRequest, strings.TrimPrefix(err.Error(), domain.ErrMsgMissingSupplies+": ")
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError logs err and writes the mapped response
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(op+" failed", "error", err)
	} else {
		log.Warn(op+" rejected", "error", err, "status", status)
	}
	respondError(w, status, msg)
}
