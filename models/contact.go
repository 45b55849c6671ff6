// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Contact is the unit of synchronization: a person's contact details plus the
// bookkeeping needed to reconcile the local copy with the remote store.
type Contact struct {
	// LocalID is assigned by the local store on first insert and is the only
	// key used to address the contact locally. Zero means "not inserted yet".
	LocalID int64 `json:"local_id"`

	// RemoteID is assigned by the remote service on the first successful
	// creation there. Nil means the contact never reached the server.
	RemoteID *int64 `json:"remote_id"`

	// Name is required and must not be empty.
	Name string `json:"name"`

	FirstName   *string    `json:"first_name"`
	Birthday    *time.Time `json:"birthday"`
	Email       *string    `json:"email"`
	Address     *string    `json:"address"`
	Zip         *string    `json:"zip"`
	City        *string    `json:"city"`
	Type        *PhoneType `json:"type"`
	PhoneNumber *string    `json:"phone_number"`

	// SyncState tracks divergence from the last known server copy.
	SyncState SyncState `json:"sync_state"`

	// Version is bumped by the local store on every edit and soft delete.
	// A push is recorded only if the row still carries the pushed version.
	Version int64 `json:"-"`
}

// HasRemoteID reports whether the contact was created on the server at least once.
func (c Contact) HasRemoteID() bool {
	return c.RemoteID != nil
}

// TableName returns the name of the local database table that stores contacts.
func (c Contact) TableName() string {
	return "contacts"
}
