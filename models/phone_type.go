package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPhoneType is returned when a value does not name a known [PhoneType].
var ErrInvalidPhoneType = errors.New("invalid phone type")

// PhoneType classifies a contact's phone number.
type PhoneType string

const (
	PhoneHome   PhoneType = "HOME"
	PhoneOffice PhoneType = "OFFICE"
	PhoneMobile PhoneType = "MOBILE"
	PhoneFax    PhoneType = "FAX"
)

// PhoneTypes lists every known phone type in display order.
var PhoneTypes = []PhoneType{PhoneHome, PhoneOffice, PhoneMobile, PhoneFax}

// Valid reports whether p is a known phone type.
func (p PhoneType) Valid() bool {
	for _, known := range PhoneTypes {
		if p == known {
			return true
		}
	}
	return false
}

// ParsePhoneType parses a case-insensitive phone type name.
func ParsePhoneType(s string) (PhoneType, error) {
	p := PhoneType(strings.ToUpper(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPhoneType, s)
	}
	return p, nil
}
