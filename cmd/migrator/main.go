package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/maze-server/internal/config"
	"github.com/vancomm/maze-server/internal/database"
	"github.com/vancomm/maze-server/migrations"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Warn("unable to load .env")
	}

	log, err := config.NewLogger()
	if err != nil {
		logrus.WithError(err).Fatal("unable to set up logging")
	}

	url, err := config.DbURL()
	if err != nil {
		log.WithError(err).Fatal("no database configured")
	}

	migrator, err := database.Migrate(url, migrations.FS)
	if err != nil {
		log.WithError(err).Fatal("failed to migrate")
	}
	defer migrator.Close()

	version, dirty, err := migrator.Version()
	if err != nil {
		log.WithError(err).Error("failed to check migration version")
		os.Exit(1)
	}
	log.WithFields(logrus.Fields{
		"version": version,
		"dirty":   dirty,
	}).Info("migration successful")
}
