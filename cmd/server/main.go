package main

import (
	"taskboard-backend/internal/api/routes"
	"taskboard-backend/internal/config"
	"taskboard-backend/internal/database"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

//go:generate swag init --generalInfo main.go --dir .,../../internal --output ../../docs

// @title Taskboard API
// @version 1.0
// @description Team task board backend: task templates, daily task materialization, assignment and live team events.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}

	setupLogging(cfg)

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.WithError(err).Fatal("failed to initialize database")
	}

	router := routes.Setup(cfg, db)

	logrus.WithFields(logrus.Fields{
		"port":        cfg.Port,
		"environment": cfg.Environment,
	}).Info("starting server")

	if err := router.Run(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("server exited")
	}
}

func setupLogging(cfg *config.Config) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if cfg.IsProduction() {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}
