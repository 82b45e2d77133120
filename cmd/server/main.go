package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/config"
	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/db"
	httpapi "github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/http"
	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/logging"
	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/migrations"
	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/services"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log, closeLogs := setupLogger(cfg)
	defer closeLogs()

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", logging.FieldError, err.Error())
		os.Exit(1)
	}

	storage := log.WithComponent(logging.ComponentStorage)
	database, err := db.Open(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		storage.Error("db open failed", logging.FieldError, err.Error())
		os.Exit(1)
	}
	defer database.Close()
	if err := migrations.Apply(database, cfg.DBDriver); err != nil {
		storage.Error("migrations failed", logging.FieldError, err.Error())
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := services.NewDashboardHub()
	go hub.Run(ctx)

	server := httpapi.NewServer(database, cfg, hub, log)
	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("listening", "addr", httpServer.Addr, "driver", cfg.DBDriver)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", logging.FieldError, err.Error())
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	<-stop
	cancel()
	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	_ = httpServer.Shutdown(ctxShutdown)
	log.Info("shutdown complete")
}

// setupLogger writes to stdout and a daily log file. When the log directory is
// unusable it falls back to stdout only.
func setupLogger(cfg config.Config) (*logging.Logger, func()) {
	level := logging.ParseLevel(cfg.LogLevel)
	file, err := logging.OpenDailyFile(cfg.LogDir, cfg.LogRetentionDays)
	if err != nil {
		log := logging.New(logging.Config{Level: level})
		log.Warn("log file disabled", logging.FieldError, err.Error())
		logging.SetDefault(log)
		return log, func() {}
	}
	log := logging.New(logging.Config{Level: level, Output: io.MultiWriter(os.Stdout, file)})
	logging.SetDefault(log)
	return log, func() { _ = file.Close() }
}
