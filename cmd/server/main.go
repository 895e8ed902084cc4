package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/maze-server/internal/app"
	"github.com/vancomm/maze-server/internal/config"
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

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	log.WithField("development", config.Development()).Info("starting up")

	if err := app.New(log, migrations.FS).Start(ctx); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
	log.Info("server stopped")
}
