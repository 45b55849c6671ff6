// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds input validation for contact records, shared by
// the client engine (before anything is written locally) and the contacts
// server (before anything reaches PostgreSQL).
//
// Validators accept an optional list of field names; when it is empty a
// sensible default set is checked.
package validators

import "context"

// Validator validates the provided input and optionally restricts
// validation to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
