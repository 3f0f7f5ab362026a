package db

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"collectioneer/internal/config"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"modernc.org/sqlite"
)

// Dialect identifies the SQL flavour spoken by a connection
type Dialect string

const (
	Postgres Dialect = config.DriverPostgres
	MySQL    Dialect = config.DriverMySQL
	SQLite   Dialect = config.DriverSQLite
)

const (
	pqUniqueViolation            = "23505"
	mysqlDuplicateEntry          = 1062
	sqliteConstraintPrimaryKey   = 1555
	sqliteConstraintUnique       = 2067
	sqliteUniqueViolationMessage = "UNIQUE constraint failed"
)

var placeholder = regexp.MustCompile(`\$\d+`)

// ParseDialect validates a configured driver name
func ParseDialect(driver string) (Dialect, error) {
	switch d := Dialect(strings.ToLower(driver)); d {
	case Postgres, MySQL, SQLite:
		return d, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}

// DriverName returns the database/sql driver registered for the dialect
func (d Dialect) DriverName() string {
	return string(d)
}

// Rebind rewrites $n placeholders to ? for drivers that only take positional
// markers. Queries must therefore number their arguments in order of appearance.
func (d Dialect) Rebind(query string) string {
	if d == Postgres {
		return query
	}
	return placeholder.ReplaceAllString(query, "?")
}

// isUniqueViolation reports whether err is a unique constraint failure in any
// of the supported drivers
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlDuplicateEntry
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		code := sqliteErr.Code()
		if code == sqliteConstraintUnique || code == sqliteConstraintPrimaryKey {
			return true
		}
	}

	return strings.Contains(err.Error(), sqliteUniqueViolationMessage)
}
