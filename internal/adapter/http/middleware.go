package httpadapter

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"selmore/internal/core/domain"
	"selmore/internal/metrics"
)

type ctxKey struct{}

// withIdentity returns a copy of ctx carrying the authenticated caller.
func withIdentity(ctx context.Context, id domain.Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// identityFrom returns the caller stored by authenticate.
func identityFrom(ctx context.Context) (domain.Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(domain.Identity)
	return id, ok
}

// logRequests writes one log line and one latency observation per request.
func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		elapsed := time.Since(start)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		metrics.ObserveRequest(r.Method, route, strconv.Itoa(status), elapsed.Seconds())

		h.logger.Info("http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", status),
			slog.Duration("duration", elapsed),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

// recoverer turns a panic into a formatted 500 response.
func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			h.writeErrorStack(w, r, fmt.Errorf("panic: %v", rec), string(debug.Stack()))
		}()
		next.ServeHTTP(w, r)
	})
}

// authenticate resolves the bearer token into an Identity and stores it
// in the request context.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		token = strings.TrimSpace(token)
		if !ok || token == "" {
			h.writeError(w, r, domain.Auth("No authorization token provided"))
			return
		}
		id, err := h.svc.Auth.Authenticate(r.Context(), token)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), id)))
	})
}

// requireRole rejects authenticated callers holding none of roles. It must
// run after authenticate.
func requireRole(h *Handler, roles ...domain.Role) func(http.Handler) http.Handler {
	names := make([]string, len(roles))
	for i, role := range roles {
		names[i] = string(role)
	}
	msg := "Forbidden - Requires one of these roles: " + strings.Join(names, ", ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := identityFrom(r.Context())
			if !ok {
				h.writeError(w, r, domain.Auth("Not authenticated"))
				return
			}
			if !id.HasRole(roles...) {
				h.writeError(w, r, domain.Forbidden(msg))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// caller returns the identity of an authenticated request. Handlers behind
// authenticate always have one.
func (h *Handler) caller(w http.ResponseWriter, r *http.Request) (domain.Identity, bool) {
	id, ok := identityFrom(r.Context())
	if !ok {
		h.writeError(w, r, domain.Auth("Not authenticated"))
	}
	return id, ok
}
