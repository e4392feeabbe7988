// cmd/report/main.go
package main

import (
	"os"

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

	if _, err := os.Stat(cfg.Database.Path); os.IsNotExist(err) {
		logrus.WithField("db_path", cfg.Database.Path).Fatal("Database not found, run ingest first")
	}

	db, err := database.Initialize(cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize database")
	}
	defer database.Close(db)

	report := services.NewReportService(db)
	rows, err := report.TopSpenders(cfg.Report.TopN)
	if err != nil {
		logrus.WithError(err).Fatal("Report failed")
	}

	if err := report.WriteTable(os.Stdout, rows); err != nil {
		logrus.WithError(err).Fatal("Failed to write report")
	}
}
