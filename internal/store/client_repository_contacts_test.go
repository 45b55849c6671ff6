package store

import (
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/models"
)

const selectContactsSQL = `SELECT local_id, remote_id, name, firstname, birthday, email, address, zip, city, phone_type, phone_number, sync_state, version FROM contacts`

func newTestLocalRepo(t *testing.T) (LocalContactRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return NewLocalContactRepository(newSQLiteDBFromSQL(db), logger.Nop()), mock
}

func contactRows() *sqlmock.Rows {
	return sqlmock.NewRows(localContactColumns)
}

func TestLocalContactRepository_Insert(t *testing.T) {
	repo, mock := newTestLocalRepo(t)
	ctx := testContext()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO contacts (remote_id,name,firstname,birthday,email,address,zip,city,phone_type,phone_number,sync_state) VALUES (?,?,?,?,?,?,?,?,?,?,?)")).
		WithArgs(nil, "Doe", "Jane", nil, nil, nil, nil, nil, "MOBILE", "+33 6 00", "TO_SYNC").
		WillReturnResult(sqlmock.NewResult(7, 1))

	localID, err := repo.Insert(ctx, models.Contact{
		Name:        "Doe",
		FirstName:   ptr("Jane"),
		Type:        ptr(models.PhoneMobile),
		PhoneNumber: ptr("+33 6 00"),
		SyncState:   models.ToSync,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), localID)
}

func TestLocalContactRepository_Insert_Error(t *testing.T) {
	repo, mock := newTestLocalRepo(t)

	mock.ExpectExec("INSERT INTO contacts").WillReturnError(errors.New("disk I/O error"))

	_, err := repo.Insert(testContext(), models.Contact{Name: "Doe", SyncState: models.ToSync})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestLocalContactRepository_InsertBatch(t *testing.T) {
	repo, mock := newTestLocalRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO contacts").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO contacts").WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	err := repo.InsertBatch(testContext(), []models.Contact{
		{RemoteID: ptr(int64(10)), Name: "A", SyncState: models.Synced},
		{RemoteID: ptr(int64(11)), Name: "B", SyncState: models.Synced},
	})
	require.NoError(t, err)
}

func TestLocalContactRepository_InsertBatch_RollsBackOnFailure(t *testing.T) {
	repo, mock := newTestLocalRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO contacts").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO contacts").WillReturnError(errors.New("constraint failed"))
	mock.ExpectRollback()

	err := repo.InsertBatch(testContext(), []models.Contact{
		{Name: "A", SyncState: models.Synced},
		{Name: "B", SyncState: models.Synced},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.Contains(t, err.Error(), "index 1")
}

func TestLocalContactRepository_InsertBatch_BeginError(t *testing.T) {
	repo, mock := newTestLocalRepo(t)

	mock.ExpectBegin().WillReturnError(errors.New("database is locked"))

	err := repo.InsertBatch(testContext(), []models.Contact{{Name: "A"}})
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestLocalContactRepository_InsertBatch_CommitError(t *testing.T) {
	repo, mock := newTestLocalRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO contacts").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit().WillReturnError(errors.New("disk full"))

	err := repo.InsertBatch(testContext(), []models.Contact{{Name: "A", SyncState: models.Synced}})
	assert.ErrorIs(t, err, ErrCommitingTransaction)
}

func TestLocalContactRepository_Update(t *testing.T) {
	repo, mock := newTestLocalRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE contacts SET address = ?, birthday = ?, city = ?, email = ?, firstname = ?, name = ?, phone_number = ?, phone_type = ?, remote_id = ?, sync_state = ?, version = version + 1, zip = ? WHERE local_id = ?")).
		WithArgs(nil, nil, nil, nil, nil, "Doe", nil, nil, int64(42), "SYNCED", nil, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(testContext(), models.Contact{
		LocalID:   3,
		RemoteID:  ptr(int64(42)),
		Name:      "Doe",
		SyncState: models.Synced,
	})
	require.NoError(t, err)
}

func TestLocalContactRepository_Get(t *testing.T) {
	repo, mock := newTestLocalRepo(t)
	birthday := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(selectContactsSQL + " WHERE local_id = ? ORDER BY local_id")).
		WithArgs(int64(3)).
		WillReturnRows(contactRows().AddRow(
			int64(3), int64(42), "Doe", "Jane", birthday, nil, nil, nil, "Paris", "HOME", nil, "SYNCED", int64(6),
		))

	c, err := repo.Get(testContext(), 3)
	require.NoError(t, err)

	assert.Equal(t, int64(3), c.LocalID)
	require.NotNil(t, c.RemoteID)
	assert.Equal(t, int64(42), *c.RemoteID)
	assert.Equal(t, "Jane", *c.FirstName)
	assert.True(t, birthday.Equal(*c.Birthday))
	assert.Nil(t, c.Email)
	assert.Equal(t, models.PhoneHome, *c.Type)
	assert.Equal(t, models.Synced, c.SyncState)
	assert.Equal(t, int64(6), c.Version)
}

func TestLocalContactRepository_Get_NotFound(t *testing.T) {
	repo, mock := newTestLocalRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM contacts").WillReturnRows(contactRows())

	_, err := repo.Get(testContext(), 99)
	assert.ErrorIs(t, err, ErrContactNotFound)
}

func TestLocalContactRepository_Get_BadSyncState(t *testing.T) {
	repo, mock := newTestLocalRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM contacts").
		WillReturnRows(contactRows().AddRow(
			int64(3), nil, "Doe", nil, nil, nil, nil, nil, nil, nil, nil, "DIRTY", int64(0),
		))

	_, err := repo.Get(testContext(), 3)
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestLocalContactRepository_Selections(t *testing.T) {
	tests := []struct {
		name  string
		where string
		state string
		call  func(r LocalContactRepository) ([]models.Contact, error)
	}{
		{
			name:  "active",
			where: " WHERE sync_state <> ?",
			state: "TO_DELETE",
			call:  func(r LocalContactRepository) ([]models.Contact, error) { return r.GetActive(testContext()) },
		},
		{
			name:  "to sync",
			where: " WHERE sync_state = ?",
			state: "TO_SYNC",
			call:  func(r LocalContactRepository) ([]models.Contact, error) { return r.GetToSync(testContext()) },
		},
		{
			name:  "to delete",
			where: " WHERE sync_state = ?",
			state: "TO_DELETE",
			call:  func(r LocalContactRepository) ([]models.Contact, error) { return r.GetToDelete(testContext()) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestLocalRepo(t)

			mock.ExpectQuery(regexp.QuoteMeta(selectContactsSQL + tt.where + " ORDER BY local_id")).
				WithArgs(tt.state).
				WillReturnRows(contactRows().
					AddRow(int64(1), nil, "A", nil, nil, nil, nil, nil, nil, nil, nil, "TO_SYNC", int64(0)).
					AddRow(int64(2), int64(5), "B", nil, nil, nil, nil, nil, nil, nil, nil, "SYNCED", int64(1)))

			contacts, err := tt.call(repo)
			require.NoError(t, err)
			require.Len(t, contacts, 2)
			assert.Equal(t, int64(1), contacts[0].LocalID)
			assert.Nil(t, contacts[0].RemoteID)
			assert.Equal(t, int64(5), *contacts[1].RemoteID)
		})
	}
}

func TestLocalContactRepository_GetActive_Empty(t *testing.T) {
	repo, mock := newTestLocalRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM contacts").WillReturnRows(contactRows())

	contacts, err := repo.GetActive(testContext())
	require.NoError(t, err)
	assert.NotNil(t, contacts)
	assert.Empty(t, contacts)
}

func TestLocalContactRepository_GetToSync_QueryError(t *testing.T) {
	repo, mock := newTestLocalRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM contacts").WillReturnError(errors.New("no such table"))

	_, err := repo.GetToSync(testContext())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestLocalContactRepository_GetToDelete_RowError(t *testing.T) {
	repo, mock := newTestLocalRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM contacts").
		WillReturnRows(contactRows().
			AddRow(int64(1), nil, "A", nil, nil, nil, nil, nil, nil, nil, nil, "TO_DELETE", int64(2)).
			RowError(0, errors.New("corrupt page")))

	_, err := repo.GetToDelete(testContext())
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestLocalContactRepository_MarkAsDeleted(t *testing.T) {
	repo, mock := newTestLocalRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE contacts SET sync_state = ?, version = version + 1 WHERE local_id = ?")).
		WithArgs("TO_DELETE", int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.MarkAsDeleted(testContext(), 4))
}

func TestLocalContactRepository_MarkAsDeleted_MissingRowIsNotAnError(t *testing.T) {
	repo, mock := newTestLocalRepo(t)

	mock.ExpectExec("UPDATE contacts SET sync_state").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.MarkAsDeleted(testContext(), 404))
}

func TestLocalContactRepository_MarkAsDeleted_UnknownAffectedRows(t *testing.T) {
	repo, mock := newTestLocalRepo(t)

	mock.ExpectExec("UPDATE contacts SET sync_state").
		WillReturnResult(sqlmock.NewErrorResult(errors.New("driver does not report affected rows")))

	// the statement itself succeeded
	require.NoError(t, repo.MarkAsDeleted(testContext(), 4))
	require.NoError(t, mock.ExpectationsWereMet())
}

// ── MarkSynced ───────────────────────────────────────────────────────────────

const (
	linkRemoteIDSQL = "UPDATE contacts SET remote_id = ? WHERE local_id = ? AND remote_id IS NULL"
	markSyncedSQL   = "UPDATE contacts SET sync_state = ? WHERE local_id = ? AND sync_state = ? AND version = ?"
)

func TestLocalContactRepository_MarkSynced(t *testing.T) {
	repo, mock := newTestLocalRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(linkRemoteIDSQL)).
		WithArgs(int64(42), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(markSyncedSQL)).
		WithArgs("SYNCED", int64(3), "TO_SYNC", int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	synced, err := repo.MarkSynced(testContext(), models.Contact{LocalID: 3, Name: "Doe", SyncState: models.ToSync, Version: 2}, 42)

	require.NoError(t, err)
	assert.True(t, synced)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalContactRepository_MarkSynced_RowChangedSinceSnapshot(t *testing.T) {
	repo, mock := newTestLocalRepo(t)

	// the remote id is still recorded so the next pass does not create a duplicate
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(linkRemoteIDSQL)).
		WithArgs(int64(42), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(markSyncedSQL)).
		WithArgs("SYNCED", int64(3), "TO_SYNC", int64(0)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	synced, err := repo.MarkSynced(testContext(), models.Contact{LocalID: 3, Name: "Doe", SyncState: models.ToSync}, 42)

	require.NoError(t, err)
	assert.False(t, synced)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalContactRepository_MarkSynced_Errors(t *testing.T) {
	snapshot := models.Contact{LocalID: 3, Name: "Doe", SyncState: models.ToSync}

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "begin",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(errors.New("database is locked"))
			},
			wantErr: ErrBeginningTransaction,
		},
		{
			name: "link remote id",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE contacts SET remote_id").WillReturnError(errors.New("readonly database"))
				mock.ExpectRollback()
			},
			wantErr: ErrExecutingStatement,
		},
		{
			name: "mark synced",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE contacts SET remote_id").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec("UPDATE contacts SET sync_state").WillReturnError(errors.New("readonly database"))
				mock.ExpectRollback()
			},
			wantErr: ErrExecutingStatement,
		},
		{
			name: "affected rows",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE contacts SET remote_id").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec("UPDATE contacts SET sync_state").
					WillReturnResult(sqlmock.NewErrorResult(errors.New("driver does not report affected rows")))
				mock.ExpectRollback()
			},
			wantErr: ErrExecutingStatement,
		},
		{
			name: "commit",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE contacts SET remote_id").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec("UPDATE contacts SET sync_state").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit().WillReturnError(errors.New("disk full"))
			},
			wantErr: ErrCommitingTransaction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestLocalRepo(t)
			tt.setup(mock)

			synced, err := repo.MarkSynced(testContext(), snapshot, 42)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.False(t, synced)
		})
	}
}

func TestLocalContactRepository_HardDelete(t *testing.T) {
	repo, mock := newTestLocalRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM contacts WHERE local_id = ?")).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.HardDelete(testContext(), 4))
}

func TestLocalContactRepository_HardDelete_Error(t *testing.T) {
	repo, mock := newTestLocalRepo(t)

	mock.ExpectExec("DELETE FROM contacts").WillReturnError(errors.New("readonly database"))

	assert.ErrorIs(t, repo.HardDelete(testContext(), 4), ErrExecutingStatement)
}

func TestLocalContactRepository_ClearAll(t *testing.T) {
	repo, mock := newTestLocalRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM contacts")).WillReturnResult(sqlmock.NewResult(0, 12))

	require.NoError(t, repo.ClearAll(testContext()))
}

func TestLocalContactRepository_CountAll(t *testing.T) {
	repo, mock := newTestLocalRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM contacts")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountAll(testContext())
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
