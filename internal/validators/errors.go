package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName        = errors.New("name is required")
	ErrInvalidPhoneType = errors.New("invalid phone type")
	ErrInvalidBirthday  = errors.New("invalid birthday")
	ErrInvalidLocalID   = errors.New("invalid local id")
	ErrNotNewRecord     = errors.New("record already has an identity")
	ErrInvalidRemoteID  = errors.New("invalid remote id")
)
