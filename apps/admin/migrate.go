package main

import (
	"github.com/pkg/errors"

	"github.com/trezcool/bunk/storage/database"
)

var (
	gooseRunFunc = database.RunMigrations // mockable
	openSQLFunc  = database.OpenSQL       // mockable

	errNotSQLStore = errors.New("migrations only apply to the postgres and sqlite3 store engines")
)

func (cli *commandLine) migrate(args []string) error {
	switch cli.conf.Store.Engine {
	case database.EnginePostgres, database.EngineSQLite:
	default:
		return errNotSQLStore
	}

	db, err := openSQLFunc(cli.conf)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	return gooseRunFunc(args[0], db.DB, db.DriverName(), args[1:]...)
}
