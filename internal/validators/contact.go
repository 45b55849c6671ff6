package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-contact-keeper/models"
)

// Field names accepted by ContactValidator.
const (
	// FieldName requires a non-blank name.
	FieldName = "name"
	// FieldType requires the phone type to be absent or one of the known values.
	FieldType = "type"
	// FieldBirthday requires a ContactDTO birthday to be absent or parseable.
	FieldBirthday = "birthday"
	// FieldLocalID requires a positive local id.
	FieldLocalID = "local_id"
	// FieldNewRecord requires a record that has neither a local nor a remote id.
	FieldNewRecord = "new_record"
	// FieldRemoteID requires a positive server id on a ContactDTO.
	FieldRemoteID = "remote_id"
)

// ContactValidator validates models.Contact on the client and
// models.ContactDTO on the server. Both value and pointer forms are accepted.
type ContactValidator struct {
}

func NewContactValidator() Validator {
	return &ContactValidator{}
}

func (v *ContactValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Contact:
		return v.validateContact(value, fields...)
	case *models.Contact:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateContact(*value, fields...)
	case models.ContactDTO:
		return v.validateDTO(value, fields...)
	case *models.ContactDTO:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateDTO(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

// validateContact checks FieldName and FieldType by default.
func (v *ContactValidator) validateContact(c models.Contact, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldType}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(c.Name) == "" {
				return ErrEmptyName
			}
		case FieldType:
			if c.Type != nil && !c.Type.Valid() {
				return ErrInvalidPhoneType
			}
		case FieldLocalID:
			if c.LocalID <= 0 {
				return ErrInvalidLocalID
			}
		case FieldNewRecord:
			if c.LocalID != 0 || c.RemoteID != nil {
				return ErrNotNewRecord
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateDTO checks FieldName, FieldType and FieldBirthday by default.
func (v *ContactValidator) validateDTO(dto models.ContactDTO, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldType, FieldBirthday}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(dto.Name) == "" {
				return ErrEmptyName
			}
		case FieldType:
			if dto.Type == nil {
				continue
			}
			if _, err := models.ParsePhoneType(*dto.Type); err != nil {
				return ErrInvalidPhoneType
			}
		case FieldBirthday:
			if dto.Birthday != nil {
				if _, err := models.ParseBirthday(*dto.Birthday); err != nil {
					return ErrInvalidBirthday
				}
			}
		case FieldRemoteID:
			if dto.ID == nil || *dto.ID <= 0 {
				return ErrInvalidRemoteID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
