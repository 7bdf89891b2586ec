package handler

import (
	"github.com/Dev-vesper/notepad/internal/config"
	"github.com/Dev-vesper/notepad/internal/handler/http"
	"github.com/Dev-vesper/notepad/internal/logger"
	"github.com/Dev-vesper/notepad/internal/service"
)

// Handlers groups the transport handlers the server exposes.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}, nil
}
