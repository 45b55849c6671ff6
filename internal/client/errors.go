package client

import "errors"

var (
	// ErrNotEnrolled is returned by Watch when there is no identity to sync with.
	ErrNotEnrolled = errors.New("not enrolled, run `enroll` first")
	// ErrInvalidBirthday is returned for a birthday not in YYYY-MM-DD form.
	ErrInvalidBirthday = errors.New("invalid birthday, expected YYYY-MM-DD")
)
