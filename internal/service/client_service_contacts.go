// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/adapter"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/internal/validators"
	"github.com/MKhiriev/go-contact-keeper/models"
)

type contactSyncService struct {
	local    store.LocalContactRepository
	identity store.IdentityHolder
	remote   adapter.ContactsAdapter

	validator validators.Validator
	logger    *logger.Logger
}

// NewContactSyncService wires the engine to its three collaborators.
func NewContactSyncService(
	local store.LocalContactRepository,
	identity store.IdentityHolder,
	remote adapter.ContactsAdapter,
	logger *logger.Logger,
) ContactSyncService {
	return &contactSyncService{
		local:     local,
		identity:  identity,
		remote:    remote,
		validator: validators.NewContactValidator(),
		logger:    logger,
	}
}

func (s *contactSyncService) Enroll(ctx context.Context) error {
	log := s.logger.With().Str("func", "contactSyncService.Enroll").Logger()

	if err := s.local.ClearAll(ctx); err != nil {
		return fmt.Errorf("clear local contacts: %w", err)
	}
	if err := s.identity.Clear(ctx); err != nil {
		return fmt.Errorf("clear identity: %w", err)
	}

	identifier, err := s.remote.Enroll(ctx)
	if err != nil {
		log.Warn().Err(err).Str("reason", remoteFailureReason(err)).Msg("enrollment rejected")
		return fmt.Errorf("%w: %w", ErrEnrollment, err)
	}
	if identifier == "" {
		return fmt.Errorf("%w: %w", ErrEnrollment, adapter.ErrEmptyIdentifier)
	}

	if err = s.identity.Save(ctx, identifier); err != nil {
		return fmt.Errorf("save identity: %w", err)
	}

	dtos, err := s.remote.ListContacts(ctx, identifier)
	if err != nil {
		log.Warn().Err(err).Str("reason", remoteFailureReason(err)).Msg("default dataset unavailable")
		return fmt.Errorf("%w: list contacts: %w", ErrEnrollment, err)
	}

	contacts := make([]models.Contact, 0, len(dtos))
	for _, dto := range dtos {
		c, err := models.DTOToContact(dto, 0, models.Synced)
		if err != nil {
			return fmt.Errorf("%w: decode contact: %w", ErrEnrollment, err)
		}
		contacts = append(contacts, c)
	}

	if err = s.local.InsertBatch(ctx, contacts); err != nil {
		return fmt.Errorf("import default dataset: %w", err)
	}

	log.Info().Int("contacts", len(contacts)).Msg("enrolled")
	return nil
}

func (s *contactSyncService) Create(ctx context.Context, contact models.Contact) (models.Contact, error) {
	if err := s.validator.Validate(ctx, contact, validators.FieldNewRecord, validators.FieldName, validators.FieldType); err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	contact.SyncState = models.ToSync
	localID, err := s.local.Insert(ctx, contact)
	if err != nil {
		return models.Contact{}, fmt.Errorf("insert contact locally: %w", err)
	}
	contact.LocalID = localID
	contact.Version = 0

	log := s.logger.With().Str("func", "contactSyncService.Create").Int64("local_id", localID).Logger()

	identifier, ok := s.currentIdentity(ctx)
	if !ok {
		log.Debug().Msg("not enrolled, contact kept locally")
		return contact, nil
	}

	created, err := s.createRemote(ctx, identifier, models.ContactToDTO(contact))
	if err != nil {
		log.Warn().Err(err).Str("reason", remoteFailureReason(err)).Msg("contact created locally, will sync later")
		return contact, nil
	}

	return s.recordPush(ctx, contact, *created.ID), nil
}

func (s *contactSyncService) Update(ctx context.Context, contact models.Contact) (models.Contact, error) {
	if err := s.validator.Validate(ctx, contact, validators.FieldLocalID, validators.FieldName, validators.FieldType); err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	log := s.logger.With().Str("func", "contactSyncService.Update").Int64("local_id", contact.LocalID).Logger()

	stored, err := s.local.Get(ctx, contact.LocalID)
	if err != nil {
		return models.Contact{}, fmt.Errorf("load contact: %w", err)
	}
	if stored.SyncState == models.ToDelete {
		log.Debug().Msg("contact is waiting for deletion, edit ignored")
		return stored, nil
	}

	// the remote id is owned by the store, never by the caller
	contact.RemoteID = stored.RemoteID
	contact.SyncState = stored.SyncState.OnLocalEdit()
	if err = s.local.Update(ctx, contact); err != nil {
		return models.Contact{}, fmt.Errorf("update contact locally: %w", err)
	}
	contact.Version = stored.Version + 1

	if !contact.HasRemoteID() {
		log.Debug().Msg("contact never reached the server, kept locally")
		return contact, nil
	}
	identifier, ok := s.currentIdentity(ctx)
	if !ok {
		return contact, nil
	}

	if _, err = s.remote.UpdateContact(ctx, identifier, *contact.RemoteID, models.ContactToDTO(contact)); err != nil {
		log.Warn().Err(err).Str("reason", remoteFailureReason(err)).Msg("contact updated locally, will sync later")
		return contact, nil
	}

	return s.recordPush(ctx, contact, *contact.RemoteID), nil
}

// recordPush marks contact as synced after the server accepted it. When the
// row changed in the meantime it keeps its local state and only the remote id
// is reported back.
func (s *contactSyncService) recordPush(ctx context.Context, contact models.Contact, remoteID int64) models.Contact {
	log := s.logger.With().
		Str("func", "contactSyncService.recordPush").
		Int64("local_id", contact.LocalID).
		Int64("remote_id", remoteID).
		Logger()

	synced, err := s.local.MarkSynced(ctx, contact, remoteID)
	if err != nil {
		log.Error().Err(err).Msg("failed to record push, left for the next pass")
		return contact
	}

	contact.RemoteID = &remoteID
	if !synced {
		log.Debug().Msg("contact changed meanwhile, left for the next pass")
		return contact
	}
	contact.SyncState = contact.SyncState.OnPushSucceeded()
	return contact
}

func (s *contactSyncService) Delete(ctx context.Context, contact models.Contact) error {
	if err := s.validator.Validate(ctx, contact, validators.FieldLocalID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := s.local.MarkAsDeleted(ctx, contact.LocalID); err != nil {
		return fmt.Errorf("mark contact as deleted: %w", err)
	}

	log := s.logger.With().Str("func", "contactSyncService.Delete").Int64("local_id", contact.LocalID).Logger()

	stored, err := s.local.Get(ctx, contact.LocalID)
	if errors.Is(err, store.ErrContactNotFound) {
		return nil
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to reload contact, left for the next pass")
		return nil
	}

	identifier, ok := s.currentIdentity(ctx)
	if !ok || !stored.HasRemoteID() {
		if err = s.local.HardDelete(ctx, stored.LocalID); err != nil {
			log.Error().Err(err).Msg("failed to remove contact, left for the next pass")
		}
		return nil
	}

	if err = s.remote.DeleteContact(ctx, identifier, *stored.RemoteID); err != nil {
		log.Warn().Err(err).Str("reason", remoteFailureReason(err)).Msg("contact marked as deleted, will sync later")
		return nil
	}

	if err = s.local.HardDelete(ctx, stored.LocalID); err != nil {
		log.Error().Err(err).Msg("contact deleted remotely but the local row remains")
	}
	return nil
}

func (s *contactSyncService) Contacts(ctx context.Context) ([]models.Contact, error) {
	return s.local.GetActive(ctx)
}

func (s *contactSyncService) Contact(ctx context.Context, localID int64) (models.Contact, error) {
	c, err := s.local.Get(ctx, localID)
	if err != nil {
		return models.Contact{}, err
	}
	if c.SyncState == models.ToDelete {
		return models.Contact{}, store.ErrContactNotFound
	}
	return c, nil
}

func (s *contactSyncService) HasIdentity(ctx context.Context) (bool, error) {
	return s.identity.Has(ctx)
}

// currentIdentity returns the stored identifier. A read failure is logged and
// treated like a missing identity so that the record stays dirty.
func (s *contactSyncService) currentIdentity(ctx context.Context) (string, bool) {
	identifier, err := s.identity.Get(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrIdentityNotFound) {
			s.logger.Error().Err(err).Str("func", "contactSyncService.currentIdentity").Msg("failed to read identity")
		}
		return "", false
	}
	return identifier, identifier != ""
}
