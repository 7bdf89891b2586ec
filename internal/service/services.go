package service

import (
	"fmt"

	"github.com/Dev-vesper/notepad/internal/config"
	"github.com/Dev-vesper/notepad/internal/crypto"
	"github.com/Dev-vesper/notepad/internal/logger"
	"github.com/Dev-vesper/notepad/internal/store"
)

type Services struct {
	AuthService    AuthService
	NoteService    NoteService
	ProfileService ProfileService
	AppInfoService AppInfoService
}

// NewServices builds every service on top of storage. Services that take
// user input are wrapped with validation.
func NewServices(storage store.DocumentStorage, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	hasher := crypto.NewPasswordHasher(crypto.DefaultArgon2Params)

	return &Services{
		AuthService:    NewAuthValidationService().Wrap(NewAuthService(storage, hasher, cfg.App, logger)),
		NoteService:    NewNoteValidationService().Wrap(NewNoteService(storage, logger)),
		ProfileService: NewProfileValidationService().Wrap(NewProfileService(storage, logger)),
		AppInfoService: appInfoService,
	}, nil
}
