// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/poiesic/materna"
	"github.com/poiesic/materna/ai"
	"github.com/poiesic/materna/api"
	"github.com/poiesic/materna/reminders"
)

type serverConfig struct {
	addr             string
	dbPath           string
	aiConfig         *ai.Config
	reminderInterval time.Duration
}

func loadConfig() serverConfig {
	// Missing .env is fine; environment variables win either way.
	_ = godotenv.Load()

	cfg := serverConfig{
		addr:             ":8080",
		dbPath:           "materna-db",
		aiConfig:         ai.DefaultConfig(),
		reminderInterval: time.Hour,
	}
	if addr := os.Getenv("MATERNA_ADDR"); addr != "" {
		cfg.addr = addr
	}
	if dbPath := os.Getenv("MATERNA_DB"); dbPath != "" {
		cfg.dbPath = dbPath
	}
	if host := os.Getenv("MATERNA_AI_HOST"); host != "" {
		cfg.aiConfig.Host = host
	}
	if model := os.Getenv("MATERNA_AI_MODEL"); model != "" {
		cfg.aiConfig.Model = model
	}
	cfg.aiConfig.APIKey = os.Getenv("MATERNA_AI_KEY")
	if raw := os.Getenv("MATERNA_REMINDER_MINUTES"); raw != "" {
		if minutes, err := strconv.Atoi(raw); err == nil && minutes > 0 {
			cfg.reminderInterval = time.Duration(minutes) * time.Minute
		}
	}
	return cfg
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	logger := slog.Default().With("component", "maternad")

	cfg := loadConfig()

	app, err := materna.NewApp(cfg.dbPath, materna.WithAIConfig(cfg.aiConfig))
	if err != nil {
		logger.Error("failed to open application", "err", err)
		os.Exit(1)
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	startReminders(ctx, app, cfg.reminderInterval, logger)

	server := &http.Server{
		Addr:    cfg.addr,
		Handler: api.NewRouter(app),
	}

	go func() {
		logger.Info("listening", "addr", cfg.addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "err", err)
	}
}

// startReminders runs the notification scheduler in the background,
// logging each notification as it comes due.
func startReminders(ctx context.Context, app *materna.App, interval time.Duration, logger *slog.Logger) {
	repos := app.Repositories()
	rules := reminders.NewRules(reminders.Sources{
		Profile: repos.Profile,
		Medical: repos.Medical,
		Journal: repos.Journal,
	}, app.Selector())

	scheduler := reminders.NewScheduler(rules, func(n reminders.Notification) {
		logger.Info("notification", "id", n.ID, "title", n.Title, "body", n.Body)
	}, reminders.WithInterval(interval))

	go scheduler.Run(ctx)
}
