package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Dev-vesper/notepad/internal/logger"
)

// withLogging writes one access line per notepad API call. The matched chi
// route ("/api/notes/{noteID}/like") is logged next to the raw URI so calls
// on different notes and profiles group under one pattern.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		event := logger.FromContextOr(r.Context(), h.logger).Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", lw.Status()).
			Int("size", lw.size).
			Dur("duration", time.Since(start))
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			event = event.Str("route", rctx.RoutePattern())
		}
		event.Msg("api call")
	})
}
