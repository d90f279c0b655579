package main

import (
	"context"
	"os"

	"pongadmin/internal/backend"
	"pongadmin/internal/config"
	"pongadmin/internal/db"
	"pongadmin/internal/i18n"
	"pongadmin/internal/logger"
	"pongadmin/internal/server"
	"pongadmin/internal/telemetry"
)

func main() {
	log := logger.New("pongadmin")
	cfg, err := config.Load()
	if err != nil {
		log.Error("Failed to load configuration", err)
		os.Exit(1)
	}
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		log.Error("Invalid log level", err)
		os.Exit(1)
	}

	shutdownTracing, err := telemetry.Setup(context.Background(), "pongadmin", cfg.OtelEndpoint)
	if err != nil {
		log.Error("Failed to set up tracing", err)
		os.Exit(1)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Error("Failed to flush traces", err)
		}
	}()

	repo, err := db.SetupDB(cfg.DB, log.Named("db"))
	if err != nil {
		log.Error("Failed to open token storage", err)
		os.Exit(1)
	}
	client := backend.NewClient(backend.Options{
		BaseURL:    cfg.BackendURL,
		Timeout:    cfg.RequestTimeout,
		WhoamiPath: cfg.WhoamiPath,
	}, log.Named("backend"))

	gs, err := server.NewAdminServer(server.Options{
		Port:          cfg.Port,
		DefaultLang:   i18n.Parse(cfg.DefaultLang, i18n.Default()),
		SecureCookies: cfg.SecureCookies,
	}, client, repo, server.NewConnectionStore(), log.Named("server"))
	if err != nil {
		log.Error("Failed to create server", err)
		repo.CloseConnection()
		os.Exit(1)
	}
	if err := gs.Run(); err != nil {
		repo.CloseConnection()
		os.Exit(1)
	}
}
