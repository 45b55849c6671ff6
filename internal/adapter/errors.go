package adapter

import "errors"

var (
	// ErrEmptyIdentifier is returned when enrollment succeeds at the HTTP
	// level but the body carries no identifier.
	ErrEmptyIdentifier = errors.New("empty identifier")
	// ErrMissingIdentity is returned when an authenticated call is attempted
	// without an identifier.
	ErrMissingIdentity = errors.New("missing identity")
	// ErrMalformedResponse is returned when a 2xx body cannot be decoded or
	// lacks a required field.
	ErrMalformedResponse = errors.New("malformed response")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")
)
