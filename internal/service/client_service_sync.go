package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/adapter"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/internal/validators"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// SyncAll implements ContactSyncService.
//
// Both phases iterate over a snapshot taken when the phase starts. A push is
// recorded with MarkSynced, which leaves the row dirty if another caller
// edited or removed it mid-pass, so the change is picked up by the next pass.
// Every remote success is written locally before the next record is tried.
// A local store failure aborts the pass and is returned together with the
// counts reached so far.
func (s *contactSyncService) SyncAll(ctx context.Context) (models.SyncReport, error) {
	var report models.SyncReport

	identifier, err := s.identity.Get(ctx)
	if errors.Is(err, store.ErrIdentityNotFound) || (err == nil && identifier == "") {
		return report, ErrNoIdentity
	}
	if err != nil {
		return report, fmt.Errorf("read identity: %w", err)
	}

	log := s.logger.With().Str("func", "contactSyncService.SyncAll").Logger()

	toDelete, err := s.local.GetToDelete(ctx)
	if err != nil {
		return report, fmt.Errorf("snapshot contacts to delete: %w", err)
	}
	log.Debug().Int("contacts", len(toDelete)).Msg("deletion phase")

	for _, c := range toDelete {
		ok, err := s.syncDeletion(ctx, identifier, c)
		if err != nil {
			return report, err
		}
		if ok {
			report.Deleted++
			report.Succeeded++
		} else {
			report.Failed++
		}
	}

	toSync, err := s.local.GetToSync(ctx)
	if err != nil {
		return report, fmt.Errorf("snapshot contacts to sync: %w", err)
	}
	log.Debug().Int("contacts", len(toSync)).Msg("push phase")

	for _, c := range toSync {
		ok, err := s.syncPush(ctx, identifier, c)
		if err != nil {
			return report, err
		}
		if ok {
			report.Pushed++
			report.Succeeded++
		} else {
			report.Failed++
		}
	}

	log.Info().
		Int("succeeded", report.Succeeded).
		Int("failed", report.Failed).
		Msg("synchronization complete")

	if !report.OK() {
		return report, fmt.Errorf("%w: %d of %d records failed", ErrSyncIncomplete, report.Failed, report.Failed+report.Succeeded)
	}
	return report, nil
}

// syncDeletion removes one tombstone. It reports false on a remote failure
// and returns an error only when the local store fails.
func (s *contactSyncService) syncDeletion(ctx context.Context, identifier string, c models.Contact) (bool, error) {
	if c.HasRemoteID() {
		if err := s.remote.DeleteContact(ctx, identifier, *c.RemoteID); err != nil {
			s.logger.Warn().Err(err).
				Str("func", "contactSyncService.syncDeletion").
				Int64("local_id", c.LocalID).
				Int64("remote_id", *c.RemoteID).
				Str("reason", remoteFailureReason(err)).
				Msg("remote delete failed")
			return false, nil
		}
	}

	if err := s.local.HardDelete(ctx, c.LocalID); err != nil {
		return false, fmt.Errorf("hard delete contact %d: %w", c.LocalID, err)
	}
	return true, nil
}

// syncPush creates or updates one dirty record remotely.
func (s *contactSyncService) syncPush(ctx context.Context, identifier string, c models.Contact) (bool, error) {
	log := s.logger.With().Str("func", "contactSyncService.syncPush").Int64("local_id", c.LocalID).Logger()

	dto := models.ContactToDTO(c)
	var remoteID int64
	if c.HasRemoteID() {
		remoteID = *c.RemoteID
		if _, err := s.remote.UpdateContact(ctx, identifier, remoteID, dto); err != nil {
			log.Warn().Err(err).Int64("remote_id", remoteID).Str("reason", remoteFailureReason(err)).Msg("remote update failed")
			return false, nil
		}
	} else {
		created, err := s.createRemote(ctx, identifier, dto)
		if err != nil {
			log.Warn().Err(err).Str("reason", remoteFailureReason(err)).Msg("remote create failed")
			return false, nil
		}
		remoteID = *created.ID
	}

	synced, err := s.local.MarkSynced(ctx, c, remoteID)
	if err != nil {
		return false, fmt.Errorf("mark contact %d as synced: %w", c.LocalID, err)
	}
	if !synced {
		log.Debug().Int64("remote_id", remoteID).Msg("contact changed during the pass, left for the next one")
	}
	return true, nil
}

// createRemote creates dto remotely and checks the server assigned an id.
func (s *contactSyncService) createRemote(ctx context.Context, identifier string, dto models.ContactDTO) (models.ContactDTO, error) {
	created, err := s.remote.CreateContact(ctx, identifier, dto)
	if err != nil {
		return models.ContactDTO{}, err
	}
	if err = s.validator.Validate(ctx, created, validators.FieldRemoteID); err != nil {
		return models.ContactDTO{}, fmt.Errorf("%w: %w", adapter.ErrMalformedResponse, err)
	}
	return created, nil
}
