package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-contact-keeper/models"
)

const ownersTable = "owners"

// serverContactColumns is the column order every server SELECT and
// RETURNING clause scans in.
var serverContactColumns = []string{
	"id", "name", "firstname", "birthday", "email",
	"address", "zip", "city", "phone_type", "phone_number",
}

// postgres uses "$n" placeholders.
var postgres = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func buildCreateOwnerQuery(ownerID string) (string, []any, error) {
	return postgres.Insert(ownersTable).
		Columns("id").
		Values(ownerID).
		ToSql()
}

func buildOwnerExistsQuery(ownerID string) (string, []any, error) {
	return postgres.Select("1").
		Prefix("SELECT EXISTS (").
		From(ownersTable).
		Where(sq.Eq{"id": ownerID}).
		Suffix(")").
		ToSql()
}

func buildCreateContactQuery(ownerID string, c models.Contact) (string, []any, error) {
	return postgres.Insert(contactsTable).
		Columns("owner_id", "name", "firstname", "birthday", "email",
			"address", "zip", "city", "phone_type", "phone_number").
		Values(ownerID, c.Name, c.FirstName, c.Birthday, c.Email,
			c.Address, c.Zip, c.City, c.Type, c.PhoneNumber).
		Suffix(returning()).
		ToSql()
}

func buildSelectOwnerContactsQuery(ownerID string, id *int64) (string, []any, error) {
	where := sq.Eq{"owner_id": ownerID}
	if id != nil {
		where["id"] = *id
	}

	return postgres.Select(serverContactColumns...).
		From(contactsTable).
		Where(where).
		OrderBy("id").
		ToSql()
}

func buildUpdateOwnerContactQuery(ownerID string, c models.Contact) (string, []any, error) {
	var id int64
	if c.RemoteID != nil {
		id = *c.RemoteID
	}

	return postgres.Update(contactsTable).
		SetMap(sq.Eq{
			"name":         c.Name,
			"firstname":    c.FirstName,
			"birthday":     c.Birthday,
			"email":        c.Email,
			"address":      c.Address,
			"zip":          c.Zip,
			"city":         c.City,
			"phone_type":   c.Type,
			"phone_number": c.PhoneNumber,
		}).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		Suffix(returning()).
		ToSql()
}

func buildDeleteOwnerContactQuery(ownerID string, id int64) (string, []any, error) {
	return postgres.Delete(contactsTable).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
}

func returning() string {
	return "RETURNING " + strings.Join(serverContactColumns, ", ")
}
