package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-contact-keeper/models"
)

// ContactSyncService is the client's synchronization engine. It keeps the
// local contact table durable first and reconciles it with the remote
// service on a best-effort basis.
//
// Operations are expected to be called one at a time. A local store failure
// is always returned; a remote failure never is for single-record
// operations, the record is left dirty for the next reconciliation pass.
type ContactSyncService interface {
	// Enroll discards every local contact and the stored identifier, obtains
	// a new identifier and imports the server's dataset as SYNCED. On
	// failure the local table is left empty.
	Enroll(ctx context.Context) error

	// Create inserts a new contact as TO_SYNC and tries to create it
	// remotely. The returned contact reflects the stored row.
	Create(ctx context.Context, contact models.Contact) (models.Contact, error)

	// Update overwrites the stored row addressed by contact.LocalID, marks it
	// TO_SYNC and tries to push it when the row already has a remote id.
	// A row waiting for deletion is left untouched.
	Update(ctx context.Context, contact models.Contact) (models.Contact, error)

	// Delete soft-deletes the contact, then removes it for good once the
	// server copy is gone or never existed.
	Delete(ctx context.Context, contact models.Contact) error

	// SyncAll drains pending deletions, then pending creates and updates.
	// It returns ErrNoIdentity without side effects when not enrolled, and
	// ErrSyncIncomplete together with the report when any record failed.
	SyncAll(ctx context.Context) (models.SyncReport, error)

	// Contacts returns the active view: every contact not waiting for
	// deletion.
	Contacts(ctx context.Context) ([]models.Contact, error)
	// Contact returns one contact of the active view.
	Contact(ctx context.Context, localID int64) (models.Contact, error)
	// HasIdentity reports whether the client is enrolled.
	HasIdentity(ctx context.Context) (bool, error)
}

// ContactSyncJob periodically runs a reconciliation pass in the background.
type ContactSyncJob interface {
	// Start launches the background goroutine. A previously running job is
	// stopped first. The goroutine exits when ctx is cancelled or Stop is
	// called.
	Start(ctx context.Context)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()

	// Interval returns the period between two passes.
	Interval() time.Duration
}
