// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the identity middleware and the contact handlers.
var (
	// ErrEmptyIdentityHeader is returned when a request to an owner-scoped
	// route carries no X-UUID header.
	ErrEmptyIdentityHeader = errors.New("empty `X-UUID` header")

	// ErrUnknownIdentity is returned when the X-UUID header names an
	// identifier the server never issued.
	ErrUnknownIdentity = errors.New("unknown identity")

	// ErrInvalidContactID is returned when the {id} path segment is not a
	// positive integer.
	ErrInvalidContactID = errors.New("invalid contact id")
)
