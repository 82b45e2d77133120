package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

func init() {
	// sqlx only knows the "sqlite3" name; modernc registers "sqlite".
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

// Open connects to Postgres through pgx or to an SQLite file through modernc.
func Open(driver, dsn string) (*sqlx.DB, error) {
	switch driver {
	case DriverPostgres:
		return openPostgres(dsn)
	case DriverSQLite:
		return openSQLite(dsn)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", driver)
	}
}

func openPostgres(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open(DriverPostgres, dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)
	if err := ping(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func openSQLite(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open(DriverSQLite, sqliteDSN(dsn))
	if err != nil {
		return nil, err
	}
	// One writer at a time; transactions would otherwise hit SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	if err := ping(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// sqliteDSN turns a plain path into a file: URI and adds the pragmas the schema relies on.
func sqliteDSN(dsn string) string {
	if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + dsn
	}
	params := []string{}
	if !strings.Contains(dsn, "foreign_keys") {
		params = append(params, "_pragma=foreign_keys(1)")
	}
	if !strings.Contains(dsn, "busy_timeout") {
		params = append(params, "_pragma=busy_timeout(5000)")
	}
	if !strings.Contains(dsn, "_time_format") {
		params = append(params, "_time_format=sqlite")
	}
	if len(params) == 0 {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(params, "&")
}

func ping(db *sqlx.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return db.PingContext(ctx)
}
