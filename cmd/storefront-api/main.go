// Command storefront-api serves the reference storefront API the admin client
// talks to.
package main

import (
	"os"
	"os/signal"
	"syscall"

	"tokoadmin/internal/config"
	"tokoadmin/internal/logging"
	"tokoadmin/internal/server"

	"github.com/spf13/viper"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load(viper.New())
	if err != nil {
		logging.New("info", "text").Fatalf("Invalid configuration: %v", err)
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	// --- Database ---
	db, err := server.OpenDatabase(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database handle: %v", err)
	}
	defer sqlDB.Close()

	srv := server.New(db, server.Options{
		JWTSecret:  cfg.JWTSecret,
		RequestLog: true,
		Logger:     log,
	})

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Infof("Starting server on port %s (database: %s)", cfg.AppPort, cfg.DatabaseDriver)
		if err := srv.App.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Info("Shutting down server...")
	if err := srv.App.Shutdown(); err != nil {
		log.Errorf("Error during Fiber shutdown: %v", err)
	}
	log.Info("Server gracefully stopped")
}
