package main

import (
	"fmt"

	"github.com/openedu/campusvoice/storage/database"
)

var (
	createDBFunc  = database.CreateIfNotExist // mockable
	migrateDBFunc = database.Migrate          // mockable
)

// initDB bootstraps the postgres role, the database and the feedback table.
func (cli *commandLine) initDB() error {
	if cli.conf.TestMode {
		fmt.Fprintln(cli.out, "Test mode: the in-memory store needs no setup.")
		return nil
	}
	if err := createDBFunc(cli.conf); err != nil {
		return err
	}
	if err := migrateDBFunc(cli.db); err != nil {
		return err
	}
	fmt.Fprintln(cli.out, "Database ready.")
	return nil
}
