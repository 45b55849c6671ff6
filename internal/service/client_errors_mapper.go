// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-contact-keeper/internal/adapter"
)

// remoteFailureReason condenses a transport error into a short log label.
// The engine treats every remote failure alike; the label only helps the
// operator tell an offline client from a rejecting server.
func remoteFailureReason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "cancelled"
	case errors.Is(err, adapter.ErrUnauthorized):
		return "unknown identity"
	case errors.Is(err, adapter.ErrNotFound):
		return "not found"
	case errors.Is(err, adapter.ErrBadRequest), errors.Is(err, adapter.ErrConflict):
		return "rejected"
	case errors.Is(err, adapter.ErrMalformedResponse), errors.Is(err, adapter.ErrEmptyIdentifier):
		return "malformed response"
	case errors.Is(err, adapter.ErrInternalServerError), errors.Is(err, adapter.ErrServiceUnavailable):
		return "server error"
	default:
		return "unreachable"
	}
}
