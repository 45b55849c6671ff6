package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-contact-keeper/models"
)

// dateLayout is how birthdays are typed and printed on the command line.
const dateLayout = "2006-01-02"

// ContactFields holds contact values typed on the command line. A nil field
// leaves the contact untouched; an empty optional field clears it.
type ContactFields struct {
	Name        *string
	FirstName   *string
	Birthday    *string
	Email       *string
	Address     *string
	Zip         *string
	City        *string
	Type        *string
	PhoneNumber *string
}

// Apply copies the set fields into c.
func (f ContactFields) Apply(c *models.Contact) error {
	if f.Name != nil {
		c.Name = strings.TrimSpace(*f.Name)
	}

	setOptional(&c.FirstName, f.FirstName)
	setOptional(&c.Email, f.Email)
	setOptional(&c.Address, f.Address)
	setOptional(&c.Zip, f.Zip)
	setOptional(&c.City, f.City)
	setOptional(&c.PhoneNumber, f.PhoneNumber)

	if f.Birthday != nil {
		c.Birthday = nil
		if s := strings.TrimSpace(*f.Birthday); s != "" {
			b, err := time.Parse(dateLayout, s)
			if err != nil {
				return fmt.Errorf("%w: %q", ErrInvalidBirthday, s)
			}
			c.Birthday = &b
		}
	}

	if f.Type != nil {
		c.Type = nil
		if s := strings.TrimSpace(*f.Type); s != "" {
			t, err := models.ParsePhoneType(s)
			if err != nil {
				return err
			}
			c.Type = &t
		}
	}

	return nil
}

func setOptional(dst **string, src *string) {
	if src == nil {
		return
	}
	v := strings.TrimSpace(*src)
	if v == "" {
		*dst = nil
		return
	}
	*dst = &v
}
