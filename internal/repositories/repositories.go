// package repositories implements persistence for the movie tracker's two tables.
//
// Every mutating call converts storage-engine failures into one of the
// sentinel outcomes in internal/shared and emits a structured event log entry.
// Raw driver errors never cross the package boundary.
package repositories

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// isUniqueViolation reports whether the error is a SQLite UNIQUE constraint failure.
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
