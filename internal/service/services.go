package service

import (
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

type Services struct {
	AuthService    AuthService
	NoteService    NoteService
	HealthService  HealthService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg.App, logger),
		NoteService: NewNoteValidationService().
			Wrap(NewNoteService(storages.NoteRepository, logger)),
		HealthService:  NewHealthService(storages.HealthChecker, logger),
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}
}
