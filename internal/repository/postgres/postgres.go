package postgres

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"backendservice/internal/repository"
)

// uniqueViolation is the SQLSTATE for a primary key or unique constraint conflict.
const uniqueViolation = "23505"

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// mapInsertError converts a unique violation into repository.ErrDuplicateID.
func mapInsertError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return repository.ErrDuplicateID
	}
	return err
}

// textArg passes a document as TEXT, or NULL when it is absent.
func textArg(b []byte) any {
	if b == nil {
		return nil
	}
	return string(b)
}

// requireAffected reports sql.ErrNoRows when a statement touched nothing.
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
