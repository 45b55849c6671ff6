// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// maxEnrollAttempts bounds retries on an identifier collision.
const maxEnrollAttempts = 3

type idGenerator interface {
	Generate() string
}

type enrollService struct {
	ownerRepository   store.OwnerRepository
	contactRepository store.ContactRepository
	generator         idGenerator

	logger *logger.Logger
}

func NewEnrollService(ownerRepository store.OwnerRepository, contactRepository store.ContactRepository, logger *logger.Logger) EnrollService {
	return &enrollService{
		ownerRepository:   ownerRepository,
		contactRepository: contactRepository,
		generator:         utils.NewUUIDGenerator(),
		logger:            logger,
	}
}

func (e *enrollService) Enroll(ctx context.Context) (string, error) {
	var (
		ownerID string
		err     error
	)
	for i := 0; i < maxEnrollAttempts; i++ {
		ownerID = e.generator.Generate()
		err = e.ownerRepository.Create(ctx, ownerID)
		if !errors.Is(err, store.ErrOwnerAlreadyExists) {
			break
		}
	}
	if err != nil {
		return "", fmt.Errorf("create owner: %w", err)
	}

	if err = e.contactRepository.CreateBatch(ctx, ownerID, DefaultContacts()); err != nil {
		return "", fmt.Errorf("seed default contacts: %w", err)
	}

	logger.FromContext(ctx).Info().Str("owner", ownerID).Msg("new owner enrolled")
	return ownerID, nil
}

func (e *enrollService) Exists(ctx context.Context, ownerID string) (bool, error) {
	if !utils.IsUUID(ownerID) {
		return false, nil
	}
	return e.ownerRepository.Exists(ctx, ownerID)
}

// DefaultContacts is the dataset every new owner starts with.
func DefaultContacts() []models.Contact {
	str := func(s string) *string { return &s }
	phone := func(p models.PhoneType) *models.PhoneType { return &p }
	date := func(y int, m time.Month, d int) *time.Time {
		t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return &t
	}

	return []models.Contact{
		{
			Name:        "Dupont",
			FirstName:   str("Roger"),
			Birthday:    date(1975, time.March, 12),
			Email:       str("roger.dupont@example.com"),
			Address:     str("Avenue des Sports 20"),
			Zip:         str("1400"),
			City:        str("Yverdon-les-Bains"),
			Type:        phone(models.PhoneHome),
			PhoneNumber: str("+41 24 123 45 67"),
			SyncState:   models.Synced,
		},
		{
			Name:        "Martin",
			FirstName:   str("Claire"),
			Email:       str("claire.martin@example.com"),
			City:        str("Lausanne"),
			Type:        phone(models.PhoneMobile),
			PhoneNumber: str("+41 79 765 43 21"),
			SyncState:   models.Synced,
		},
		{
			Name:        "Muller",
			FirstName:   str("Hans"),
			Address:     str("Bahnhofstrasse 1"),
			Zip:         str("8001"),
			City:        str("Zurich"),
			Type:        phone(models.PhoneOffice),
			PhoneNumber: str("+41 44 555 00 11"),
			SyncState:   models.Synced,
		},
	}
}
