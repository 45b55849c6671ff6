package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
)

// ErrorClassificator decides whether a failed database operation is worth
// repeating.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// defaultRetryDelays are the pauses between attempts of a retried operation.
var defaultRetryDelays = []time.Duration{time.Second, 3 * time.Second, 5 * time.Second}

// DB wraps a *sql.DB with the error classifier and logger shared by the
// repositories built on top of it.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	retryDelays        []time.Duration
}

// withRetry runs op and repeats it while the classifier reports the error as
// retryable, waiting between attempts. A DB without a classifier runs op
// exactly once. The last error is returned.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	err := op()
	if err == nil || db.errorClassificator == nil {
		return err
	}

	for attempt, delay := range db.retryDelays {
		if db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		db.logger.Warn().Err(err).
			Str("func", "DB.withRetry").
			Int("attempt", attempt+1).
			Dur("delay", delay).
			Msg("retrying database operation after transient error")

		select {
		case <-ctx.Done():
			return err
		case <-time.After(delay):
		}

		if err = op(); err == nil {
			return nil
		}
	}

	return err
}
