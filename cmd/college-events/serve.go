package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"collegeEvents/internal/bootstrap"
	"collegeEvents/internal/config"
	"collegeEvents/internal/http-server/router"
	"collegeEvents/internal/lib/logger/sl"
	"collegeEvents/internal/lib/tokens"
	"collegeEvents/internal/storage/postgres"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Apply migrations, seed the admin account and start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(config.ResolvePath(configPath))
		if err != nil {
			return err
		}

		return serve(cmd.Context(), cfg)
	},
}

func serve(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	log := setupLogger(cfg.Env)

	log.Info("starting college events", slog.String("env", cfg.Env))
	log.Debug("debug messages are enabled")

	if err := postgres.MigrateUp(cfg.Database.URL()); err != nil {
		log.Error("failed to apply migrations", sl.Err(err))
		return err
	}

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		return err
	}
	defer func() {
		if err := storage.Close(); err != nil {
			log.Error("failed to close postgres connection", sl.Err(err))
			return
		}
		log.Info("postgres connection closed")
	}()

	if err = bootstrap.EnsureAdmin(ctx, log, storage, cfg.Admin); err != nil {
		log.Error("failed to seed admin", sl.Err(err))
		return err
	}

	manager := tokens.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, cfg.Auth.Issuer)

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router.New(log, storage, manager, cfg.HTTPServer),
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)

	go func() {
		log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sign := <-stop:
		log.Info("application stopping", slog.String("signal", sign.String()))
	case err = <-serverErr:
		log.Error("failed to start server", sl.Err(err))
		return fmt.Errorf("http server: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
		return err
	}

	log.Info("application stopped")

	return nil
}
