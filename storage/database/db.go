package database

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/trezcool/goose"

	"github.com/trezcool/bunk/core"
	"github.com/trezcool/bunk/fs"
	"github.com/trezcool/bunk/storage/database/bolt"
	"github.com/trezcool/bunk/storage/database/inmem"
	"github.com/trezcool/bunk/storage/database/sqlx"
)

// Store engines
const (
	EngineBolt     = "bolt"
	EnginePostgres = "postgres"
	EngineSQLite   = "sqlite3"
	EngineMemory   = "memory"
)

var ErrUnknownEngine = errors.New("unknown store engine")

// OpenStore opens the key-value store selected by conf.Store.Engine.
// SQL engines are migrated before being returned.
func OpenStore(conf *core.Config) (core.KVStore, error) {
	switch conf.Store.Engine {
	case "", EngineBolt:
		return boltdb.Open(conf.Store.Path)
	case EngineMemory:
		return inmemdb.Open()
	case EnginePostgres, EngineSQLite:
		db, err := OpenSQL(conf)
		if err != nil {
			return nil, err
		}
		if err = ping(db.DB); err != nil {
			_ = db.Close()
			return nil, errors.Wrap(err, "pinging database")
		}
		if err = Migrate(db.DB, db.DriverName()); err != nil {
			_ = db.Close()
			return nil, err
		}
		return sqlxdb.NewKV(db), nil
	default:
		return nil, errors.Wrapf(ErrUnknownEngine, "%q", conf.Store.Engine)
	}
}

// OpenSQL connects to the SQL database backing the postgres and sqlite3 engines.
func OpenSQL(conf *core.Config) (*sqlx.DB, error) {
	driver := conf.Store.Engine
	dsn := conf.Database.DSN
	if dsn == "" {
		switch driver {
		case EngineSQLite:
			if err := os.MkdirAll(filepath.Dir(conf.Store.Path), 0755); err != nil {
				return nil, errors.Wrap(err, "creating data directory")
			}
			dsn = conf.Store.Path
		case EnginePostgres:
			dsn = postgresURL(conf.Database)
		default:
			return nil, errors.Wrapf(ErrUnknownEngine, "%q is not an SQL engine", driver)
		}
	}
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}
	if driver == EngineSQLite {
		// a single writer avoids "database is locked" errors
		db.SetMaxOpenConns(1)
	}
	return db, nil
}

func postgresURL(conf core.DatabaseConfig) string {
	sslMode := "require"
	if conf.DisableTLS {
		sslMode = "disable"
	}
	q := make(url.Values)
	q.Set("sslmode", sslMode)
	q.Set("timezone", "utc")

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(conf.User, conf.Password),
		Host:     conf.Address(),
		Path:     conf.Name,
		RawQuery: q.Encode(),
	}
	return u.String()
}

// ping waits for the database to be ready. Waits 100ms longer between each attempt.
func ping(db *sql.DB) error {
	var err error
	maxAttempts := 30
	for attempts := 1; attempts <= maxAttempts; attempts++ {
		err = db.Ping()
		if err == nil {
			break
		}
		time.Sleep(time.Duration(attempts) * 100 * time.Millisecond)
	}

	if err != nil {
		return errors.Wrap(err, "DB ping timeout")
	}
	return nil
}

// Migrate applies every pending migration embedded in appfs.FS.
func Migrate(db *sql.DB, dialect string) error {
	return RunMigrations("up", db, dialect)
}

// RunMigrations runs a goose command ("up", "down", "status", ...) against db.
func RunMigrations(command string, db *sql.DB, dialect string, args ...string) error {
	if err := goose.SetDialect(dialect); err != nil {
		return errors.Wrap(err, "setting migration dialect")
	}
	if err := goose.RunFS(command, db, appfs.FS, "migrations", args...); err != nil {
		return errors.Wrap(err, fmt.Sprintf("migrating database (%s)", command))
	}
	return nil
}
