package service

import (
	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
)

type Services struct {
	EnrollService  EnrollService
	ContactService ContactService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App.Version, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		EnrollService:  NewEnrollService(storages.OwnerRepository, storages.ContactRepository, logger),
		ContactService: NewContactService(storages.ContactRepository, logger),
		AppInfoService: appInfo,
	}, nil
}
