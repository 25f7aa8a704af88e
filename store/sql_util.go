package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// wrapPostgresError wraps a driver error into a PersistenceError and
// tags the well known cases with the matching sentinel.
func wrapPostgresError(op string, table TableDef, err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		err = fmt.Errorf("%w. %s", ErrKeyAlreadyExists, err.Error())
	}

	errMap := map[error]error{
		sql.ErrNoRows: ErrNotFound,
	}

	for g, e := range errMap {
		if errors.Is(err, g) {
			err = fmt.Errorf("%w. %s", e, err.Error())
		}
	}

	return &PersistenceError{Op: op, Table: table.FullTableName(), Err: err}
}
