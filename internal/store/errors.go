package store

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

var (
	// ErrNotFound is returned when a query matches no rows.
	ErrNotFound = errors.New("store: record not found")

	// ErrDuplicate is returned on unique constraint violations.
	ErrDuplicate = errors.New("store: duplicate key")
)

// mapErr translates raw driver errors into the package sentinels so callers
// can branch with errors.Is without knowing which driver is configured.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == 1062 { // ER_DUP_ENTRY
		return ErrDuplicate
	}

	// mattn/go-sqlite3 does not export typed errors through database/sql,
	// so SQLite violations are matched on the message.
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return ErrDuplicate
	}

	return err
}
