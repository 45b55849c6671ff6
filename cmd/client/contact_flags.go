package main

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-contact-keeper/internal/client"
)

const (
	flagName      = "name"
	flagFirstName = "first-name"
	flagBirthday  = "birthday"
	flagEmail     = "email"
	flagAddress   = "address"
	flagZip       = "zip"
	flagCity      = "city"
	flagType      = "type"
	flagPhone     = "phone"
)

type contactFlags struct {
	name      string
	firstName string
	birthday  string
	email     string
	address   string
	zip       string
	city      string
	phoneType string
	phone     string
}

func (f *contactFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.name, flagName, "", "last name")
	fs.StringVar(&f.firstName, flagFirstName, "", "first name")
	fs.StringVar(&f.birthday, flagBirthday, "", "birthday as YYYY-MM-DD")
	fs.StringVar(&f.email, flagEmail, "", "e-mail address")
	fs.StringVar(&f.address, flagAddress, "", "street address")
	fs.StringVar(&f.zip, flagZip, "", "postal code")
	fs.StringVar(&f.city, flagCity, "", "city")
	fs.StringVar(&f.phoneType, flagType, "", "phone type: HOME, OFFICE, MOBILE or FAX")
	fs.StringVar(&f.phone, flagPhone, "", "phone number")
}

// fields returns only the values given on the command line.
func (f *contactFlags) fields(cmd *cobra.Command) client.ContactFields {
	changed := func(name string, v *string) *string {
		if !cmd.Flags().Changed(name) {
			return nil
		}
		return v
	}

	return client.ContactFields{
		Name:        changed(flagName, &f.name),
		FirstName:   changed(flagFirstName, &f.firstName),
		Birthday:    changed(flagBirthday, &f.birthday),
		Email:       changed(flagEmail, &f.email),
		Address:     changed(flagAddress, &f.address),
		Zip:         changed(flagZip, &f.zip),
		City:        changed(flagCity, &f.city),
		Type:        changed(flagType, &f.phoneType),
		PhoneNumber: changed(flagPhone, &f.phone),
	}
}
