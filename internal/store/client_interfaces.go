package store

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalContactRepository is the durable on-device contact table. It is the
// source of truth for everything the client shows.
type LocalContactRepository interface {
	// Insert stores a new contact and returns its assigned local id.
	Insert(ctx context.Context, contact models.Contact) (int64, error)
	// InsertBatch stores all contacts in one transaction: either every row
	// is written or none is.
	InsertBatch(ctx context.Context, contacts []models.Contact) error
	// Update overwrites every field of the row with contact.LocalID and bumps
	// its version.
	Update(ctx context.Context, contact models.Contact) error
	// MarkSynced records a successful push of snapshot. remoteID is stored
	// if the row has none yet. The row leaves TO_SYNC only if its state and
	// version still match snapshot; otherwise it stays dirty and false is
	// returned.
	MarkSynced(ctx context.Context, snapshot models.Contact, remoteID int64) (bool, error)
	// Get returns ErrContactNotFound when no row has localID.
	Get(ctx context.Context, localID int64) (models.Contact, error)
	// GetActive returns every contact not waiting for deletion.
	GetActive(ctx context.Context) ([]models.Contact, error)
	GetToSync(ctx context.Context) ([]models.Contact, error)
	GetToDelete(ctx context.Context) ([]models.Contact, error)
	// MarkAsDeleted sets TO_DELETE and bumps the version; a missing row is
	// not an error.
	MarkAsDeleted(ctx context.Context, localID int64) error
	// HardDelete removes the row; a missing row is not an error.
	HardDelete(ctx context.Context, localID int64) error
	ClearAll(ctx context.Context) error
	CountAll(ctx context.Context) (int, error)
}

// IdentityHolder persists the identifier obtained at enrollment.
type IdentityHolder interface {
	Save(ctx context.Context, identifier string) error
	// Get returns ErrIdentityNotFound before the first enrollment.
	Get(ctx context.Context) (string, error)
	Has(ctx context.Context) (bool, error)
	Clear(ctx context.Context) error
}
