package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"selmore/internal/core/domain"
)

const internalErrorMessage = "Internal Server Error"

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error string `json:"error"`
	Stack string `json:"stack,omitempty"`
}

// statusFor maps a domain error kind to an HTTP status.
func statusFor(kind domain.Kind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindAuth:
		return http.StatusUnauthorized
	case domain.KindForbidden:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError is the single error formatter of the API. Domain errors keep
// their message; anything else is logged and, in production, reported as
// a generic 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	h.writeErrorStack(w, r, err, "")
}

func (h *Handler) writeErrorStack(w http.ResponseWriter, r *http.Request, err error, stack string) {
	var (
		kind   = domain.KindOf(err)
		status = statusFor(kind)
		body   = errorBody{Error: err.Error()}
	)

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		status = http.StatusRequestEntityTooLarge
		body.Error = "Request body too large"
		kind = domain.KindValidation
	}

	if kind == domain.KindInternal {
		h.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("url", r.URL.String()),
			slog.Any("error", err),
			slog.String("stack", stack),
		)
		if h.opts.Production {
			body.Error = internalErrorMessage
		} else {
			body.Stack = stack
		}
	}
	h.writeJSON(w, status, body)
}

func (h *Handler) writeMessage(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, errorBody{Error: msg})
}
