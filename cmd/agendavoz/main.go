package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MikeSquared-Agency/agendavoz/internal/api"
	"github.com/MikeSquared-Agency/agendavoz/internal/bus"
	"github.com/MikeSquared-Agency/agendavoz/internal/config"
	"github.com/MikeSquared-Agency/agendavoz/internal/interpreter"
	"github.com/MikeSquared-Agency/agendavoz/internal/notifier"
	"github.com/MikeSquared-Agency/agendavoz/internal/processor"
	"github.com/MikeSquared-Agency/agendavoz/internal/reminder"
	"github.com/MikeSquared-Agency/agendavoz/internal/store"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	slog.Info("agendavoz starting", "port", cfg.Port)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Timezone anchors "hoje"/"amanhã" resolution.
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		slog.Error("invalid timezone", "timezone", cfg.Timezone, "error", err)
		os.Exit(1)
	}
	interp := interpreter.New(func() time.Time { return time.Now().In(loc) })

	// Database
	if cfg.DatabaseURL == "" {
		slog.Error("DATABASE_URL is required")
		os.Exit(1)
	}
	db, err := store.New(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database connected")

	// NATS
	busClient, err := bus.NewClient(cfg.NatsURL, cfg.NatsToken, slog.Default())
	if err != nil {
		slog.Error("failed to connect to NATS", "error", err)
		os.Exit(1)
	}
	defer busClient.Close()
	slog.Info("NATS connected", "url", cfg.NatsURL)

	// Processor — transcript in, resolved event out
	proc := processor.New(db, interp, busClient, slog.Default())

	if err := busClient.Subscribe(bus.SubjectTranscriptFinal, proc.HandleTranscriptFinal); err != nil {
		slog.Error("failed to subscribe to transcripts", "error", err)
		os.Exit(1)
	}

	// Reminder dispatch (optional — agendavoz works without the gateway,
	// events just carry the phone for manual follow-up)
	if cfg.WhatsAppGatewayURL != "" {
		poster := notifier.NewPoster(cfg.WhatsAppGatewayURL, cfg.WhatsAppToken, slog.Default())
		sweeper := reminder.New(db, poster, busClient,
			time.Duration(cfg.ReminderLeadMin)*time.Minute, slog.Default())
		if err := sweeper.Start(cfg.ReminderSpec); err != nil {
			slog.Error("failed to start reminder sweeper", "error", err)
			os.Exit(1)
		}
		defer sweeper.Stop()
	} else {
		slog.Warn("whatsapp gateway not configured — running without reminders")
	}

	// HTTP API
	srv := api.NewServer(cfg.Port, cfg.APIToken, interp, db)
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	slog.Info("agendavoz ready", "port", cfg.Port, "timezone", cfg.Timezone)

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	slog.Info("shutting down")
	cancel()
	slog.Info("agendavoz stopped")
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
