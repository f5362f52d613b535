package main

import (
	"log"

	"neurotic-crabs/internal/app"
	"neurotic-crabs/internal/config"
	"neurotic-crabs/internal/logger"
	"neurotic-crabs/internal/shutdown"

	"github.com/google/uuid"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	appLogger, err := logger.New(logger.Options{
		Level:     cfg.LogLevel,
		JSON:      cfg.JSONLogs,
		SessionID: uuid.New().String(),
	})
	if err != nil {
		log.Fatalf("Logger initialization failed: %v", err)
	}

	application, err := app.NewApplication(cfg, appLogger)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	// Ctrl-C quits through the host so the shutdown hook still persists state
	shutdownManager := shutdown.NewManager(appLogger)
	shutdownManager.Register(shutdown.Func(application.Quit))
	shutdownManager.Listen()

	if err := application.Run(); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}

	appLogger.Info("Application", "terminated", nil)
}
