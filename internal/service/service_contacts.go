package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
	"github.com/MKhiriev/go-contact-keeper/internal/validators"
	"github.com/MKhiriev/go-contact-keeper/models"
)

type contactService struct {
	contactRepository store.ContactRepository
	validator         validators.Validator

	logger *logger.Logger
}

func NewContactService(contactRepository store.ContactRepository, logger *logger.Logger) ContactService {
	return &contactService{
		contactRepository: contactRepository,
		validator:         validators.NewContactValidator(),
		logger:            logger,
	}
}

func (c *contactService) List(ctx context.Context) ([]models.ContactDTO, error) {
	owner, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	contacts, err := c.contactRepository.List(ctx, owner)
	if err != nil {
		return nil, err
	}

	dtos := make([]models.ContactDTO, 0, len(contacts))
	for _, contact := range contacts {
		dtos = append(dtos, models.ContactToDTO(contact))
	}
	return dtos, nil
}

func (c *contactService) Get(ctx context.Context, id int64) (models.ContactDTO, error) {
	owner, err := ownerFromContext(ctx)
	if err != nil {
		return models.ContactDTO{}, err
	}

	contact, err := c.contactRepository.Get(ctx, owner, id)
	if err != nil {
		return models.ContactDTO{}, err
	}
	return models.ContactToDTO(contact), nil
}

func (c *contactService) Create(ctx context.Context, dto models.ContactDTO) (models.ContactDTO, error) {
	owner, err := ownerFromContext(ctx)
	if err != nil {
		return models.ContactDTO{}, err
	}

	dto.ID = nil
	contact, err := c.toContact(ctx, dto)
	if err != nil {
		return models.ContactDTO{}, err
	}

	created, err := c.contactRepository.Create(ctx, owner, contact)
	if err != nil {
		return models.ContactDTO{}, err
	}
	return models.ContactToDTO(created), nil
}

func (c *contactService) Update(ctx context.Context, id int64, dto models.ContactDTO) (models.ContactDTO, error) {
	owner, err := ownerFromContext(ctx)
	if err != nil {
		return models.ContactDTO{}, err
	}

	dto.ID = &id
	contact, err := c.toContact(ctx, dto)
	if err != nil {
		return models.ContactDTO{}, err
	}

	updated, err := c.contactRepository.Update(ctx, owner, contact)
	if err != nil {
		return models.ContactDTO{}, err
	}
	return models.ContactToDTO(updated), nil
}

func (c *contactService) Delete(ctx context.Context, id int64) error {
	owner, err := ownerFromContext(ctx)
	if err != nil {
		return err
	}
	return c.contactRepository.Delete(ctx, owner, id)
}

// toContact validates dto and converts it into a stored contact.
func (c *contactService) toContact(ctx context.Context, dto models.ContactDTO) (models.Contact, error) {
	if err := c.validator.Validate(ctx, dto); err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	contact, err := models.DTOToContact(dto, 0, models.Synced)
	if err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return contact, nil
}

func ownerFromContext(ctx context.Context) (string, error) {
	owner, ok := utils.GetOwnerFromContext(ctx)
	if !ok {
		return "", ErrNoOwnerInContext
	}
	return owner, nil
}
