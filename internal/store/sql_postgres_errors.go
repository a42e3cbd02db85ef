package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification is attached to every failed query in the logs. The
// server does not retry; the class only tells an outage from a bad request.
type ErrorClassification int

const (
	// Permanent covers everything not listed below.
	Permanent ErrorClassification = iota
	// Transient failures may pass on a later attempt: lost connections,
	// serialization failures, deadlocks, a server that is starting up.
	Transient
	// Conflict is a unique constraint violation, e.g. a taken email.
	Conflict
	// Invalid is data the schema refused: NOT NULL, CHECK, bad input syntax.
	Invalid
)

// PostgresErrorClassifier implements [ErrorClassificator] by reading the
// SQLSTATE of a *pgconn.PgError.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return Permanent
	}
	return ClassifyPgError(pgErr)
}

// ClassifyPgError maps a SQLSTATE to its class.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	code := pgErr.Code

	switch {
	case code == pgerrcode.UniqueViolation:
		return Conflict
	case code == pgerrcode.NotNullViolation,
		code == pgerrcode.CheckViolation,
		pgerrcode.IsDataException(code):
		return Invalid
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code),
		code == pgerrcode.CannotConnectNow,
		code == pgerrcode.AdminShutdown,
		code == pgerrcode.TooManyConnections:
		return Transient
	}

	return Permanent
}

func (c ErrorClassification) String() string {
	switch c {
	case Transient:
		return "transient"
	case Conflict:
		return "conflict"
	case Invalid:
		return "invalid"
	default:
		return "permanent"
	}
}

// classify is nil-safe so repositories built in tests without a classifier
// still log.
func (db *DB) classify(err error) string {
	if db == nil || db.errorClassificator == nil {
		return Permanent.String()
	}
	return db.errorClassificator.Classify(err).String()
}
