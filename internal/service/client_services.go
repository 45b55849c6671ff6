package service

import (
	"github.com/MKhiriev/go-contact-keeper/internal/adapter"
	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
)

type ClientServices struct {
	SyncService ContactSyncService
	SyncJob     ContactSyncJob
}

func NewClientServices(localStore *store.ClientStorages, contactsAdapter adapter.ContactsAdapter, cfg config.ClientWorkers, logger *logger.Logger) *ClientServices {
	syncSvc := NewContactSyncService(localStore.Contacts, localStore.Identity, contactsAdapter, logger)

	return &ClientServices{
		SyncService: syncSvc,
		SyncJob:     NewContactSyncJob(syncSvc, cfg.SyncInterval, logger),
	}
}
