package config

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// NewSQLDB opens the slot database for the postgres and sqlite store drivers.
func NewSQLDB(cfg *Config) (*sqlx.DB, error) {
	switch cfg.StoreDriver {
	case StorePostgres:
		db, err := sqlx.Connect("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		return db, nil
	case StoreSQLite:
		dsn := cfg.DatabaseURL
		if dsn == "" {
			dsn = "file:" + cfg.DataDir + "/booth.db?_pragma=busy_timeout(5000)"
		}
		db, err := sqlx.Connect("sqlite", dsn)
		if err != nil {
			return nil, err
		}
		// sqlite serializes writers; one connection avoids SQLITE_BUSY.
		db.SetMaxOpenConns(1)
		return db, nil
	default:
		return nil, fmt.Errorf("store driver %q has no SQL database", cfg.StoreDriver)
	}
}
