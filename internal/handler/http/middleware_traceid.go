package http

import (
	"net/http"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID gives every notepad API call a trace id: the caller's
// X-Trace-ID when present, a fresh UUIDv7 otherwise. The id is echoed in the
// response and carried by the request logger as "trace_id", so the access
// line and every service and store entry of one call share it.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = h.traceIDs.Generate()
		}

		reqLogger := h.logger.WithField("trace_id", traceID)

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(reqLogger.WithContext(r.Context())))
	})
}
