package main

import (
	"log"
	"os"

	echoapi "github.com/jnedu/classroom2030/apps/api/echo"
	"github.com/jnedu/classroom2030/core"
	"github.com/jnedu/classroom2030/core/class"
	"github.com/jnedu/classroom2030/core/group"
	emailsvc "github.com/jnedu/classroom2030/services/email"
	logsvc "github.com/jnedu/classroom2030/services/logger"
	"github.com/jnedu/classroom2030/storage/database"
	sqlxrepos "github.com/jnedu/classroom2030/storage/database/sqlx"
)

func main() {
	conf := core.LoadConfig()
	std := log.New(os.Stdout, conf.AppName+" : ", log.LstdFlags|log.Lshortfile)

	var logger core.Logger
	if conf.Debug || conf.RollbarToken == "" {
		logger = logsvc.NewStdLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std, conf)
	}

	// set up DB
	db, err := database.Open(conf)
	if err != nil {
		logger.Fatal("opening database", err)
	}
	defer func() { _ = db.Close() }()
	if err = database.Migrate(db); err != nil {
		logger.Fatal("migrating database", err)
	}

	// set up services
	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService()
	} else {
		mailSvc = emailsvc.NewSendgridService(logger)
	}
	groupSvc := group.NewService(sqlxrepos.NewGroupRepository(db), conf.AdminPassword)
	classSvc := class.NewService(sqlxrepos.NewClassRepository(db))

	// start API server
	app := echoapi.NewServer(&echoapi.Options{
		Addr:     conf.Server.Addr,
		Logger:   logger,
		MailSvc:  mailSvc,
		GroupSvc: groupSvc,
		ClassSvc: classSvc,
	})
	app.Start()
}
