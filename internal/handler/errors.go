package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pkordes/trainline/backend/internal/domain"
)

// errorDetail and errorResponse form the JSON error envelope:
// {"error":{"code":"not_found","message":"line not found"}}.
type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorDetail `json:"error"`
}

func errorBody(code, message string) errorResponse {
	return errorResponse{Error: errorDetail{Code: code, Message: message}}
}

// writeError maps a service error onto an HTTP status and error body.
// notFoundMsg names what was being looked up (e.g. "line not found").
// Anything not recognised is logged and answered with 500.
func writeError(w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody("not_found", notFoundMsg))
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody("validation_error", validationMessage(err)))
	case errors.Is(err, domain.ErrConflict):
		writeJSON(w, http.StatusConflict, errorBody("conflict", "concurrent append, retry the request"))
	default:
		slog.ErrorContext(r.Context(), "unhandled error", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody("internal_error", "internal server error"))
	}
}

// writeBadRequest answers 400 for a request rejected before reaching the
// service layer (malformed body, unparsable parameter).
func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorBody("bad_request", message))
}

// validationMessage extracts the human-readable part of a wrapped
// domain.ErrValidation.
// e.g. "service.LineService.Create: validation error: name is required" -> "name is required"
func validationMessage(err error) string {
	msg := err.Error()
	if _, after, ok := strings.Cut(msg, domain.ErrValidation.Error()+": "); ok {
		return after
	}
	return msg
}
