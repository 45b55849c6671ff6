package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// contactRepository is the PostgreSQL-backed implementation of
// [ContactRepository]. All methods log through the request-scoped logger.
type contactRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	logger.Debug().Msg("creating contact repository")
	return &contactRepository{
		db:     db,
		logger: logger,
	}
}

func (r *contactRepository) Create(ctx context.Context, ownerID string, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateContactQuery(ownerID, contact)
	if err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Contact
	err = r.db.withRetry(ctx, func() error {
		created, err = scanServerContact(r.db.QueryRowContext(ctx, query, args...))
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.Create").Msg("error creating contact")
		return models.Contact{}, r.mapError(err)
	}

	return created, nil
}

func (r *contactRepository) CreateBatch(ctx context.Context, ownerID string, contacts []models.Contact) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.CreateBatch").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for idx, contact := range contacts {
		query, args, err := buildCreateContactQuery(ownerID, contact)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "*contactRepository.CreateBatch").
				Int("iteration", idx+1).
				Msg("failed to insert contact in transaction")
			return fmt.Errorf("failed to insert contact at index %d: %w", idx, r.mapError(err))
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*contactRepository.CreateBatch").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return nil
}

func (r *contactRepository) Get(ctx context.Context, ownerID string, id int64) (models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectOwnerContactsQuery(ownerID, &id)
	if err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Contact
	err = r.db.withRetry(ctx, func() error {
		found, err = scanServerContact(r.db.QueryRowContext(ctx, query, args...))
		return err
	})
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Err(err).Str("func", "*contactRepository.Get").Int64("id", id).Msg("error getting contact")
		}
		return models.Contact{}, r.mapError(err)
	}

	return found, nil
}

func (r *contactRepository) List(ctx context.Context, ownerID string) ([]models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectOwnerContactsQuery(ownerID, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var contacts []models.Contact
	err = r.db.withRetry(ctx, func() error {
		contacts, err = r.list(ctx, query, args)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.List").Msg("error listing contacts")
		return nil, err
	}

	return contacts, nil
}

func (r *contactRepository) list(ctx context.Context, query string, args []any) ([]models.Contact, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	contacts := make([]models.Contact, 0)
	for rows.Next() {
		c, scanErr := scanServerContact(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		contacts = append(contacts, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return contacts, nil
}

func (r *contactRepository) Update(ctx context.Context, ownerID string, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateOwnerContactQuery(ownerID, contact)
	if err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Contact
	err = r.db.withRetry(ctx, func() error {
		updated, err = scanServerContact(r.db.QueryRowContext(ctx, query, args...))
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.Update").Msg("error updating contact")
		return models.Contact{}, r.mapError(err)
	}

	return updated, nil
}

func (r *contactRepository) Delete(ctx context.Context, ownerID string, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteOwnerContactQuery(ownerID, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = r.db.withRetry(ctx, func() error {
		res, execErr := r.db.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.Delete").Int64("id", id).Msg("error deleting contact")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return ErrContactNotFound
	}

	return nil
}

func (r *contactRepository) mapError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrContactNotFound
	}
	if mapped, ok := constraintError(err); ok {
		return mapped
	}
	return fmt.Errorf("unexpected DB error: %w", err)
}

// scanServerContact reads one row in serverContactColumns order into a
// contact whose RemoteID is the server id.
func scanServerContact(row rowScanner) (models.Contact, error) {
	var (
		c  models.Contact
		id int64
	)
	err := row.Scan(
		&id,
		&c.Name,
		&c.FirstName,
		&c.Birthday,
		&c.Email,
		&c.Address,
		&c.Zip,
		&c.City,
		&c.Type,
		&c.PhoneNumber,
	)
	if err != nil {
		return models.Contact{}, err
	}

	c.RemoteID = &id
	c.SyncState = models.Synced
	return c, nil
}
