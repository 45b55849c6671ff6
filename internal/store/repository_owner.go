package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
)

// ownerRepository is the PostgreSQL-backed implementation of [OwnerRepository].
type ownerRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewOwnerRepository(db *DB, logger *logger.Logger) OwnerRepository {
	logger.Debug().Msg("creating owner repository")
	return &ownerRepository{
		db:     db,
		logger: logger,
	}
}

// Create registers a freshly issued identifier.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrOwnerAlreadyExists].
//   - Transient errors are retried; anything else is wrapped.
func (r *ownerRepository) Create(ctx context.Context, ownerID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateOwnerQuery(ownerID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*ownerRepository.Create").Msg("error creating owner")
		if mapped, ok := constraintError(err); ok {
			return mapped
		}
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

func (r *ownerRepository) Exists(ctx context.Context, ownerID string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildOwnerExistsQuery(ownerID)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var exists bool
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&exists)
	})
	if err != nil {
		log.Err(err).Str("func", "*ownerRepository.Exists").Msg("error checking owner")
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	return exists, nil
}
