// cmd/ingest/main.go
package main

import (
	"github.com/sirupsen/logrus"

	"github.com/javajoker/ecomsynth/internal/config"
	"github.com/javajoker/ecomsynth/internal/database"
	"github.com/javajoker/ecomsynth/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	db, err := database.Initialize(cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize database")
	}
	defer database.Close(db)

	if err := services.NewIngestService(db, cfg).Run(); err != nil {
		logrus.WithError(err).Fatal("Ingest failed")
	}

	logrus.WithField("db_path", cfg.Database.Path).Info("Ingest complete")
}
