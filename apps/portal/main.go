package main

import (
	"log"
	"os"

	"github.com/openedu/campusvoice/core"
	"github.com/openedu/campusvoice/core/feedback"
	clfsvc "github.com/openedu/campusvoice/services/classifier"
	logsvc "github.com/openedu/campusvoice/services/logger"
	"github.com/openedu/campusvoice/storage/database"
	dummydb "github.com/openedu/campusvoice/storage/database/dummy"
	sqlxrepos "github.com/openedu/campusvoice/storage/database/sqlx"
)

func main() {
	defer os.Exit(0)

	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "PORTAL : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	cli := commandLine{
		conf: conf,
		out:  os.Stdout,
	}

	// set up the record store; test mode runs on the in-memory store
	var repo feedback.Repository
	if conf.TestMode {
		db, err := dummydb.Open()
		errAndDie(logger, err)
		repo = dummydb.NewFeedbackRepository(db)
	} else {
		db, err := database.Open(conf)
		errAndDie(logger, err)
		defer func() { _ = db.Close() }()
		repo = sqlxrepos.NewFeedbackRepository(db)
		cli.db = db
	}

	// set up services
	classifier, err := clfsvc.NewService(conf, logger)
	errAndDie(logger, err)
	cli.fbSvc = feedback.NewService(repo, classifier, logger)

	// start CLI
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Error(err.Error(), err)
		}
		os.Exit(1)
	}
}

func errAndDie(logger core.Logger, err error) {
	if err != nil {
		logger.Fatal(err.Error(), err)
	}
}
