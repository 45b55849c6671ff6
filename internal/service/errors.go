package service

import "errors"

var (
	// ErrNoIdentity is returned when an operation needs the enrolled
	// identifier and none is stored. The caller must enroll first.
	ErrNoIdentity = errors.New("client is not enrolled")
	// ErrEnrollment is returned when the remote part of enrollment fails.
	ErrEnrollment = errors.New("enrollment failed")
	// ErrSyncIncomplete is returned by a reconciliation pass that left at
	// least one record dirty. The report is still valid.
	ErrSyncIncomplete = errors.New("synchronization incomplete")

	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrNoOwnerInContext      = errors.New("no owner in context")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
