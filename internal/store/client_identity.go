package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
)

// identityHolder keeps the enrolled identifier in a single-row table of the
// local database.
type identityHolder struct {
	*DB
	logger *logger.Logger
}

func NewIdentityHolder(db *DB, logger *logger.Logger) IdentityHolder {
	return &identityHolder{
		DB:     db,
		logger: logger,
	}
}

func (h *identityHolder) Save(ctx context.Context, identifier string) error {
	query, args, err := buildSaveIdentityQuery(identifier)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = h.DB.ExecContext(ctx, query, args...); err != nil {
		h.logger.Err(err).Str("func", "identityHolder.Save").Msg("failed to save identity")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (h *identityHolder) Get(ctx context.Context) (string, error) {
	query, args, err := buildGetIdentityQuery()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var identifier string
	err = h.DB.QueryRowContext(ctx, query, args...).Scan(&identifier)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrIdentityNotFound
	}
	if err != nil {
		h.logger.Err(err).Str("func", "identityHolder.Get").Msg("failed to read identity")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return identifier, nil
}

func (h *identityHolder) Has(ctx context.Context) (bool, error) {
	_, err := h.Get(ctx)
	if errors.Is(err, ErrIdentityNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (h *identityHolder) Clear(ctx context.Context) error {
	query, args, err := buildClearIdentityQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = h.DB.ExecContext(ctx, query, args...); err != nil {
		h.logger.Err(err).Str("func", "identityHolder.Clear").Msg("failed to clear identity")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
