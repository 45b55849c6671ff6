package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

type localContactRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalContactRepository(db *DB, logger *logger.Logger) LocalContactRepository {
	return &localContactRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localContactRepository) Insert(ctx context.Context, contact models.Contact) (int64, error) {
	query, args, err := buildInsertContactQuery(contact)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := l.DB.ExecContext(ctx, query, args...)
	if err != nil {
		l.logger.Err(err).
			Str("func", "localContactRepository.Insert").
			Str("name", contact.Name).
			Msg("failed to insert contact")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	localID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted local id: %w", err)
	}

	l.logger.Debug().
		Str("func", "localContactRepository.Insert").
		Int64("local_id", localID).
		Stringer("sync_state", contact.SyncState).
		Msg("contact inserted")

	return localID, nil
}

func (l *localContactRepository) InsertBatch(ctx context.Context, contacts []models.Contact) error {
	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		l.logger.Err(err).
			Str("func", "localContactRepository.InsertBatch").
			Int("entries_count", len(contacts)).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for idx, contact := range contacts {
		query, args, err := buildInsertContactQuery(contact)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			l.logger.Err(err).
				Str("func", "localContactRepository.InsertBatch").
				Int("iteration", idx+1).
				Int("total", len(contacts)).
				Msg("failed to insert contact in transaction")
			return fmt.Errorf("failed to insert contact at index %d: %w: %w", idx, ErrExecutingStatement, err)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		l.logger.Err(commitErr).
			Str("func", "localContactRepository.InsertBatch").
			Int("entries_count", len(contacts)).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	l.logger.Debug().
		Str("func", "localContactRepository.InsertBatch").
		Int("entries_count", len(contacts)).
		Msg("contacts inserted")

	return nil
}

func (l *localContactRepository) Update(ctx context.Context, contact models.Contact) error {
	query, args, err := buildUpdateContactQuery(contact)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		l.logger.Err(err).
			Str("func", "localContactRepository.Update").
			Int64("local_id", contact.LocalID).
			Msg("failed to update contact")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localContactRepository) MarkSynced(ctx context.Context, snapshot models.Contact, remoteID int64) (bool, error) {
	log := l.logger.With().
		Str("func", "localContactRepository.MarkSynced").
		Int64("local_id", snapshot.LocalID).
		Int64("remote_id", remoteID).
		Logger()

	linkQuery, linkArgs, err := buildLinkRemoteIDQuery(snapshot.LocalID, remoteID)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	syncedQuery, syncedArgs, err := buildMarkSyncedQuery(snapshot)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("failed to begin transaction")
		return false, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, linkQuery, linkArgs...); err != nil {
		log.Err(err).Msg("failed to record remote id")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	res, err := tx.ExecContext(ctx, syncedQuery, syncedArgs...)
	if err != nil {
		log.Err(err).Msg("failed to mark contact as synced")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		log.Err(err).Msg("failed to read affected rows")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Msg("failed to commit transaction")
		return false, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	if affected == 0 {
		log.Debug().Int64("version", snapshot.Version).Msg("contact changed since snapshot, left dirty")
		return false, nil
	}
	return true, nil
}

func (l *localContactRepository) Get(ctx context.Context, localID int64) (models.Contact, error) {
	query, args, err := buildSelectContactsQuery(sq.Eq{"local_id": localID})
	if err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	contact, err := scanContact(l.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Contact{}, ErrContactNotFound
	}
	if err != nil {
		l.logger.Err(err).
			Str("func", "localContactRepository.Get").
			Int64("local_id", localID).
			Msg("failed to get contact")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return contact, nil
}

func (l *localContactRepository) GetActive(ctx context.Context) ([]models.Contact, error) {
	return l.selectContacts(ctx, "localContactRepository.GetActive", sq.NotEq{"sync_state": models.ToDelete})
}

func (l *localContactRepository) GetToSync(ctx context.Context) ([]models.Contact, error) {
	return l.selectContacts(ctx, "localContactRepository.GetToSync", sq.Eq{"sync_state": models.ToSync})
}

func (l *localContactRepository) GetToDelete(ctx context.Context) ([]models.Contact, error) {
	return l.selectContacts(ctx, "localContactRepository.GetToDelete", sq.Eq{"sync_state": models.ToDelete})
}

func (l *localContactRepository) MarkAsDeleted(ctx context.Context, localID int64) error {
	query, args, err := buildMarkAsDeletedQuery(localID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return l.exec(ctx, "localContactRepository.MarkAsDeleted", localID, query, args)
}

func (l *localContactRepository) HardDelete(ctx context.Context, localID int64) error {
	query, args, err := buildHardDeleteQuery(localID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return l.exec(ctx, "localContactRepository.HardDelete", localID, query, args)
}

func (l *localContactRepository) ClearAll(ctx context.Context) error {
	query, args, err := buildClearContactsQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		l.logger.Err(err).Str("func", "localContactRepository.ClearAll").Msg("failed to clear contacts")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localContactRepository) CountAll(ctx context.Context) (int, error) {
	query, args, err := buildCountContactsQuery()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = l.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		l.logger.Err(err).Str("func", "localContactRepository.CountAll").Msg("failed to count contacts")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// exec runs a statement addressed to a single row. Zero affected rows is not
// an error.
func (l *localContactRepository) exec(ctx context.Context, funcName string, localID int64, query string, args []any) error {
	res, err := l.DB.ExecContext(ctx, query, args...)
	if err != nil {
		l.logger.Err(err).
			Str("func", funcName).
			Int64("local_id", localID).
			Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		l.logger.Warn().Err(err).
			Str("func", funcName).
			Int64("local_id", localID).
			Msg("statement ran but affected rows are unknown")
		return nil
	}
	if affected == 0 {
		l.logger.Debug().
			Str("func", funcName).
			Int64("local_id", localID).
			Msg("no row matched")
	}

	return nil
}

func (l *localContactRepository) selectContacts(ctx context.Context, funcName string, where sq.Sqlizer) ([]models.Contact, error) {
	query, args, err := buildSelectContactsQuery(where)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		l.logger.Err(err).Str("func", funcName).Msg("failed to query contacts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	contacts := make([]models.Contact, 0)
	for rows.Next() {
		contact, scanErr := scanContact(rows)
		if scanErr != nil {
			l.logger.Err(scanErr).Str("func", funcName).Msg("failed to scan contact row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		contacts = append(contacts, contact)
	}
	if err = rows.Err(); err != nil {
		l.logger.Err(err).Str("func", funcName).Msg("error iterating contact rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return contacts, nil
}

// scanContact reads one row in localContactColumns order.
func scanContact(row rowScanner) (models.Contact, error) {
	var c models.Contact
	err := row.Scan(
		&c.LocalID,
		&c.RemoteID,
		&c.Name,
		&c.FirstName,
		&c.Birthday,
		&c.Email,
		&c.Address,
		&c.Zip,
		&c.City,
		&c.Type,
		&c.PhoneNumber,
		&c.SyncState,
		&c.Version,
	)
	return c, err
}
