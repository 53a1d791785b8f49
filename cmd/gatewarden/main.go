package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/veilcraft/gatewarden/internal/api"
	"github.com/veilcraft/gatewarden/internal/config"
	"github.com/veilcraft/gatewarden/internal/db"
	"github.com/veilcraft/gatewarden/internal/federation"
	"github.com/veilcraft/gatewarden/internal/notify"
	"github.com/veilcraft/gatewarden/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	repositories := db.NewRepositories(database)
	notifier := buildNotifier(cfg)
	verifier := federation.NewHTTPVerifier(nil, cfg.FederationUserInfoURL)
	accounts := services.NewAccountService(repositories.Accounts, notifier, verifier, []byte(cfg.SecretKey))

	handler := api.NewHandler(accounts)

	app := fiber.New(fiber.Config{
		AppName:               "Gatewarden",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Gatewarden listening on http://0.0.0.0:%s (db: %s)", cfg.Port, cfg.DBPath)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func buildNotifier(cfg config.Config) services.Notifier {
	if cfg.SMTPHost == "" {
		log.Println("SMTP_HOST not set, logging notifications instead of sending")
		return notify.NewLogNotifier()
	}
	return notify.NewSMTPNotifier(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom, cfg.SMTPUsername, cfg.SMTPPassword)
}
