package dberrors

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.mongodb.org/mongo-driver/mongo"
)

// IsNotFound reports whether err is a driver-level "nothing matched" error
// from either supported backend.
func IsNotFound(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments) || errors.Is(err, pgx.ErrNoRows)
}

// IsTimeout reports whether err came from a cancelled or expired query.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || mongo.IsTimeout(err) {
		return true
	}
	var pgErr *pgconn.PgError
	// 57014 is query_canceled (statement_timeout)
	return errors.As(err, &pgErr) && pgErr.Code == "57014"
}

// IsUndefinedTable checks if the error is a PostgreSQL undefined_table error,
// which happens when the catalog schema was never migrated.
func IsUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "42P01"
}
