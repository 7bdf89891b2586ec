package http

import (
	"net/http"

	"github.com/Dev-vesper/notepad/internal/logger"
)

// getServerVersion answers GET /api/version/ with the bare version string.
// The route needs no session so clients can check compatibility before login.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(version)); err != nil {
		logger.FromContextOr(r.Context(), h.logger).Err(err).Str("func", "*Handler.getServerVersion").Msg("error writing version")
	}
}
