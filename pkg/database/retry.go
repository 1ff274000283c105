package database

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tair/shop-backoffice/pkg/logger"
)

const (
	maxAttempts  = 3
	retryBackoff = 25 * time.Millisecond
)

// SQLSTATE codes that indicate transient contention worth retrying.
const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeLockNotAvailable     = "55P03"
)

// WithRetry runs fn, retrying a bounded number of times when it fails with a
// transient contention error. Business failures are returned immediately.
func WithRetry(fn func() error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = fn()
		if err == nil || !IsRetryable(err) {
			return err
		}

		logger.Logger.Warn().
			Err(err).
			Int("attempt", attempt).
			Msg("Transient database contention, retrying")

		time.Sleep(retryBackoff * time.Duration(attempt))
	}
	return err
}

// IsRetryable reports whether err is a transient PostgreSQL contention error
func IsRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case codeSerializationFailure, codeDeadlockDetected, codeLockNotAvailable:
		return true
	}
	return false
}
