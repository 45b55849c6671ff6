// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// BirthdayLayout is the fixed textual timestamp format used for birthdays on
// the wire.
const BirthdayLayout = "2006-01-02T15:04:05.000Z07:00"

// ContactDTO is the server-facing transfer record of a [Contact].
//
// It carries the server's own ID instead of the local bookkeeping fields.
// Optional fields are pointers without omitempty so that absent values are
// encoded as explicit JSON nulls.
type ContactDTO struct {
	// ID is the server identifier. Nil on create requests.
	ID          *int64  `json:"id"`
	Name        string  `json:"name"`
	FirstName   *string `json:"firstname"`
	Birthday    *string `json:"birthday"`
	Email       *string `json:"email"`
	Address     *string `json:"address"`
	Zip         *string `json:"zip"`
	City        *string `json:"city"`
	Type        *string `json:"type"`
	PhoneNumber *string `json:"phoneNumber"`
}

// ContactToDTO flattens a contact into its transfer representation. The
// RemoteID becomes the DTO ID.
func ContactToDTO(c Contact) ContactDTO {
	dto := ContactDTO{
		ID:          c.RemoteID,
		Name:        c.Name,
		FirstName:   c.FirstName,
		Email:       c.Email,
		Address:     c.Address,
		Zip:         c.Zip,
		City:        c.City,
		PhoneNumber: c.PhoneNumber,
	}

	if c.Birthday != nil {
		b := c.Birthday.Format(BirthdayLayout)
		dto.Birthday = &b
	}
	if c.Type != nil {
		t := string(*c.Type)
		dto.Type = &t
	}

	return dto
}

// DTOToContact builds a local contact from a transfer record with the given
// local ID and sync state. It fails on a malformed birthday or an unknown
// phone type.
func DTOToContact(dto ContactDTO, localID int64, state SyncState) (Contact, error) {
	c := Contact{
		LocalID:     localID,
		RemoteID:    dto.ID,
		Name:        dto.Name,
		FirstName:   dto.FirstName,
		Email:       dto.Email,
		Address:     dto.Address,
		Zip:         dto.Zip,
		City:        dto.City,
		PhoneNumber: dto.PhoneNumber,
		SyncState:   state,
	}

	if dto.Birthday != nil {
		b, err := ParseBirthday(*dto.Birthday)
		if err != nil {
			return Contact{}, err
		}
		c.Birthday = &b
	}
	if dto.Type != nil {
		t, err := ParsePhoneType(*dto.Type)
		if err != nil {
			return Contact{}, err
		}
		c.Type = &t
	}

	return c, nil
}

// ParseBirthday parses a wire-format birthday.
func ParseBirthday(s string) (time.Time, error) {
	b, err := time.Parse(BirthdayLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse birthday %q: %w", s, err)
	}
	return b, nil
}
