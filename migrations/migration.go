package main

import (
	"gin-tasktracker/infra"
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	bootLog := logrus.New()
	infra.Initialize(bootLog)

	cfg, err := infra.LoadConfig()
	if err != nil {
		bootLog.WithError(err).Fatal("Failed to load configuration")
	}
	log := infra.NewLogger(cfg, os.Stdout)

	if cfg.DB.Name == "" {
		log.Warn("DB_NAME not set; migrating an in-memory database has no lasting effect")
	}

	db, err := infra.SetupDB(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	tokenDB, err := infra.SetupTokenDB(cfg, db, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to open token database")
	}

	if err := infra.Migrate(db, tokenDB); err != nil {
		log.WithError(err).Fatal("Failed to migrate database")
	}
	log.Info("Migration completed")
}
