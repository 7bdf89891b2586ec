package service

import (
	"context"

	"github.com/Dev-vesper/notepad/internal/config"
	"github.com/Dev-vesper/notepad/internal/logger"
)

// appInfoService reports the version of the running notepad server. The
// version is fixed at construction time.
type appInfoService struct {
	version string
}

// NewAppInfoService returns [ErrVersionIsNotSpecified] when cfg carries no
// version; cmd/server fills it from the build info or the configuration.
func NewAppInfoService(cfg config.App, log *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		log.Error().Str("func", "NewAppInfoService").Msg("app version is not specified")
		return nil, ErrVersionIsNotSpecified
	}

	log.Info().Str("version", cfg.Version).Msg("notepad version")
	return &appInfoService{version: cfg.Version}, nil
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.version
}
