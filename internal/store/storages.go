package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
)

// Storages groups the contacts server repositories.
type Storages struct {
	OwnerRepository   OwnerRepository
	ContactRepository ContactRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations, and wires the
// repositories.
func NewStorages(ctx context.Context, dsn string, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, dsn, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.MigrateServer(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		OwnerRepository:   NewOwnerRepository(db, logger),
		ContactRepository: NewContactRepository(db, logger),
		db:                db,
	}, nil
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
