package main

import "github.com/jnedu/classroom2030/storage/database"

func (cli *commandLine) migrate() error {
	return database.Migrate(cli.db)
}
