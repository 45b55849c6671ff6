// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client's gateway to the remote contacts service.
//
// [ContactsAdapter] decouples the synchronization engine from the wire
// protocol. The package ships an HTTP/REST implementation
// ([NewHTTPContactsAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/contacts_adapter_mock.go -package=mock

// ContactsAdapter talks to the remote contacts service. Every call except
// Enroll is authenticated by the identifier obtained from Enroll.
// Implementations map transport failures to the sentinel errors of this
// package; a timeout is reported like any other failure.
type ContactsAdapter interface {
	// Enroll asks the service for a new identifier. An empty answer is
	// [ErrEmptyIdentifier].
	Enroll(ctx context.Context) (string, error)

	// ListContacts returns every contact the service holds for identity.
	ListContacts(ctx context.Context, identity string) ([]models.ContactDTO, error)

	// GetContact returns a single contact by its server id.
	GetContact(ctx context.Context, identity string, id int64) (models.ContactDTO, error)

	// CreateContact creates dto remotely and returns the stored record,
	// which always carries the assigned id.
	CreateContact(ctx context.Context, identity string, dto models.ContactDTO) (models.ContactDTO, error)

	// UpdateContact overwrites the remote record id with dto.
	UpdateContact(ctx context.Context, identity string, id int64, dto models.ContactDTO) (models.ContactDTO, error)

	// DeleteContact removes the remote record id.
	DeleteContact(ctx context.Context, identity string, id int64) error
}
