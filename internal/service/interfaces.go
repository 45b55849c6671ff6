package service

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/models"
)

// ContactService serves the contacts of the owner found in the request
// context (see utils.WithOwner). Contacts travel in their transfer form.
type ContactService interface {
	List(ctx context.Context) ([]models.ContactDTO, error)
	Get(ctx context.Context, id int64) (models.ContactDTO, error)
	// Create ignores dto.ID and returns the stored record with its id.
	Create(ctx context.Context, dto models.ContactDTO) (models.ContactDTO, error)
	// Update overwrites the record id; the id in dto is ignored.
	Update(ctx context.Context, id int64, dto models.ContactDTO) (models.ContactDTO, error)
	Delete(ctx context.Context, id int64) error
}

// EnrollService issues identifiers and checks them on later requests.
type EnrollService interface {
	// Enroll creates a new owner seeded with the default dataset and
	// returns its identifier.
	Enroll(ctx context.Context) (string, error)
	// Exists reports whether ownerID was issued by Enroll.
	Exists(ctx context.Context, ownerID string) (bool, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
