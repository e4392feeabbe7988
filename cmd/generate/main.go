// cmd/generate/main.go
package main

import (
	"github.com/sirupsen/logrus"

	"github.com/javajoker/ecomsynth/internal/config"
	"github.com/javajoker/ecomsynth/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	generator, err := services.NewGeneratorService(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Invalid generation configuration")
	}

	if err := generator.Run(); err != nil {
		logrus.WithError(err).Fatal("Generation failed")
	}
}
