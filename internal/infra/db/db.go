package db

import (
	"database/sql"
	"fmt"
	"net/url"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

type DB struct {
	*sql.DB
	driver    string
	namespace string
}

func New(driver, dsn, namespace string) (*DB, error) {
	var db *sql.DB
	var err error

	switch driver {
	case "sqlite":
		db, err = sql.Open("sqlite", dsn)
		// modernc sqlite does not serialize writers across connections
		if err == nil {
			db.SetMaxOpenConns(1)
		}
	case "postgres":
		if namespace != "" {
			dsn, err = withSearchPath(dsn, namespace)
			if err != nil {
				return nil, err
			}
		}
		db, err = sql.Open("pgx", dsn)
	default:
		return nil, fmt.Errorf("db: unsupported driver: %s", driver)
	}

	if err != nil {
		return nil, fmt.Errorf("db: failed to open: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("db: failed to ping: %w", err)
	}

	return &DB{DB: db, driver: driver, namespace: namespace}, nil
}

func (d *DB) Close() error {
	return d.DB.Close()
}

// TableName returns the physical name of a namespaced table. SQLite has no
// schemas so the namespace becomes a prefix; PostgreSQL resolves it through
// search_path.
func (d *DB) TableName(name string) string {
	if d.driver == "sqlite" && d.namespace != "" {
		return d.namespace + "_" + name
	}
	return name
}

func withSearchPath(dsn, namespace string) (string, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return "", fmt.Errorf("db: failed to parse DSN: %w", err)
	}
	q := u.Query()
	q.Set("search_path", namespace)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
