// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-contact-keeper/models"
)

const (
	contactsTable = "contacts"
	identityTable = "identity"

	// identityRowID pins the identity table to a single row.
	identityRowID = 1
)

// contactFieldColumns are the columns an insert writes.
var contactFieldColumns = []string{
	"remote_id", "name", "firstname", "birthday", "email",
	"address", "zip", "city", "phone_type", "phone_number", "sync_state",
}

// localContactColumns is the column order every local SELECT scans in.
var localContactColumns = append(append([]string{"local_id"}, contactFieldColumns...), "version")

// bumpVersion is set by every local write an in-flight push must not overwrite.
var bumpVersion = sq.Expr("version + 1")

// sqlite uses "?" placeholders.
var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildInsertContactQuery(c models.Contact) (string, []any, error) {
	return sqlite.Insert(contactsTable).
		Columns(contactFieldColumns...).
		Values(c.RemoteID, c.Name, c.FirstName, c.Birthday, c.Email,
			c.Address, c.Zip, c.City, c.Type, c.PhoneNumber, c.SyncState).
		ToSql()
}

func buildUpdateContactQuery(c models.Contact) (string, []any, error) {
	return sqlite.Update(contactsTable).
		SetMap(sq.Eq{
			"remote_id":    c.RemoteID,
			"name":         c.Name,
			"firstname":    c.FirstName,
			"birthday":     c.Birthday,
			"email":        c.Email,
			"address":      c.Address,
			"zip":          c.Zip,
			"city":         c.City,
			"phone_type":   c.Type,
			"phone_number": c.PhoneNumber,
			"sync_state":   c.SyncState,
			"version":      bumpVersion,
		}).
		Where(sq.Eq{"local_id": c.LocalID}).
		ToSql()
}

// buildLinkRemoteIDQuery records the server id of a created contact. An id
// already on the row is never replaced.
func buildLinkRemoteIDQuery(localID, remoteID int64) (string, []any, error) {
	return sqlite.Update(contactsTable).
		Set("remote_id", remoteID).
		Where(sq.Eq{"local_id": localID, "remote_id": nil}).
		ToSql()
}

// buildMarkSyncedQuery clears the dirty flag only while the row is still the
// version that was pushed.
func buildMarkSyncedQuery(snapshot models.Contact) (string, []any, error) {
	return sqlite.Update(contactsTable).
		Set("sync_state", snapshot.SyncState.OnPushSucceeded()).
		Where(sq.Eq{
			"local_id":   snapshot.LocalID,
			"sync_state": snapshot.SyncState,
			"version":    snapshot.Version,
		}).
		ToSql()
}

// buildSelectContactsQuery selects contacts filtered by where, ordered by
// local id so listings are stable.
func buildSelectContactsQuery(where sq.Sqlizer) (string, []any, error) {
	query := sqlite.Select(localContactColumns...).
		From(contactsTable).
		OrderBy("local_id")
	if where != nil {
		query = query.Where(where)
	}
	return query.ToSql()
}

func buildMarkAsDeletedQuery(localID int64) (string, []any, error) {
	return sqlite.Update(contactsTable).
		Set("sync_state", models.ToDelete).
		Set("version", bumpVersion).
		Where(sq.Eq{"local_id": localID}).
		ToSql()
}

func buildHardDeleteQuery(localID int64) (string, []any, error) {
	return sqlite.Delete(contactsTable).
		Where(sq.Eq{"local_id": localID}).
		ToSql()
}

func buildClearContactsQuery() (string, []any, error) {
	return sqlite.Delete(contactsTable).ToSql()
}

func buildCountContactsQuery() (string, []any, error) {
	return sqlite.Select("COUNT(*)").From(contactsTable).ToSql()
}

func buildSaveIdentityQuery(identifier string) (string, []any, error) {
	return sqlite.Insert(identityTable).
		Columns("id", "value").
		Values(identityRowID, identifier).
		Suffix("ON CONFLICT (id) DO UPDATE SET value = excluded.value, enrolled_at = CURRENT_TIMESTAMP").
		ToSql()
}

func buildGetIdentityQuery() (string, []any, error) {
	return sqlite.Select("value").
		From(identityTable).
		Where(sq.Eq{"id": identityRowID}).
		ToSql()
}

func buildClearIdentityQuery() (string, []any, error) {
	return sqlite.Delete(identityTable).ToSql()
}
