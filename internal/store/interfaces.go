package store

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_store_mock.go -package=mock

// OwnerRepository tracks the identifiers issued at enrollment.
type OwnerRepository interface {
	Create(ctx context.Context, ownerID string) error
	Exists(ctx context.Context, ownerID string) (bool, error)
}

// ContactRepository is the server-side contact table. Every method is scoped
// to one owner; rows of other owners are invisible. Contacts carry the
// server id in RemoteID.
type ContactRepository interface {
	Create(ctx context.Context, ownerID string, contact models.Contact) (models.Contact, error)
	// CreateBatch inserts contacts in one transaction.
	CreateBatch(ctx context.Context, ownerID string, contacts []models.Contact) error
	Get(ctx context.Context, ownerID string, id int64) (models.Contact, error)
	List(ctx context.Context, ownerID string) ([]models.Contact, error)
	// Update returns ErrContactNotFound when the owner has no row with
	// contact.RemoteID.
	Update(ctx context.Context, ownerID string, contact models.Contact) (models.Contact, error)
	// Delete returns ErrContactNotFound when the owner has no row with id.
	Delete(ctx context.Context, ownerID string, id int64) error
}
