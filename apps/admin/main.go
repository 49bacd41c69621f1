package main

import (
	"log"
	"os"

	"github.com/jnedu/classroom2030/core"
	"github.com/jnedu/classroom2030/core/class"
	"github.com/jnedu/classroom2030/core/group"
	"github.com/jnedu/classroom2030/storage/database"
	sqlxrepos "github.com/jnedu/classroom2030/storage/database/sqlx"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.LoadConfig()

	// set up DB
	if err := database.CreateIfNotExist(conf); err != nil {
		logger.Fatal(err)
	}
	db, err := database.Open(conf)
	errAndDie(err)
	defer func() { _ = db.Close() }()
	errAndDie(db.Ping())

	// start CLI
	cli := commandLine{
		db:       db,
		groupSvc: group.NewService(sqlxrepos.NewGroupRepository(db), conf.AdminPassword),
		classSvc: class.NewService(sqlxrepos.NewClassRepository(db)),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
