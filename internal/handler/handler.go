package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"vineyard/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code, code and message.
func writeError(w http.ResponseWriter, status int, code, message string, logger zerolog.Logger) {
	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Str("code", code).Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: code, Message: message})
}

// writeServiceError maps an error returned by a service onto an HTTP response.
// Errors the client cannot act on are reported as a generic internal error.
func writeServiceError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var (
		reqErr    *requestError
		domainErr *model.DomainError
		inputErr  *model.InvalidInputError
		lineErr   *model.InvalidLineError
		configErr *model.InvalidConfigurationError
	)

	switch {
	case errors.As(err, &reqErr):
		logger.Warn().Str("code", reqErr.code).Str("error", reqErr.message).Msg("invalid request")
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{
			Error:   reqErr.code,
			Message: reqErr.message,
			Details: reqErr.details,
		})
	case errors.As(err, &domainErr):
		writeError(w, domainStatus(domainErr.Code), domainErr.Code, domainErr.Message, logger)
	case errors.As(err, &inputErr):
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidInput, inputErr.Error(), logger)
	case errors.As(err, &lineErr):
		writeError(w, http.StatusUnprocessableEntity, model.ErrCodeInvalidLine, lineErr.Error(), logger)
	case errors.As(err, &configErr):
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidConfiguration, configErr.Error(), logger)
	default:
		logger.Error().Err(err).Msg("unexpected service error")
		writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{
			Error:   model.ErrCodeInternalError,
			Message: "internal server error",
		})
	}
}

func domainStatus(code string) int {
	switch code {
	case model.ErrCodeMenuItemNotFound, model.ErrCodeLineNotFound, model.ErrCodeReceiptNotFound:
		return http.StatusNotFound
	case model.ErrCodeReceiptFinalized, model.ErrCodeUsernameTaken:
		return http.StatusConflict
	case model.ErrCodeInvalidCredentials:
		return http.StatusUnauthorized
	case model.ErrCodeCartEmpty:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}
