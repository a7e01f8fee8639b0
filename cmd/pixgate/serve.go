package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pixgate-systems/pixgate/internal/config"
	"github.com/pixgate-systems/pixgate/internal/forwarder"
	"github.com/pixgate-systems/pixgate/internal/handlers"
	"github.com/pixgate-systems/pixgate/internal/logging"
	"github.com/pixgate-systems/pixgate/internal/ratelimit"
	"github.com/pixgate-systems/pixgate/internal/server"
	"github.com/pixgate-systems/pixgate/internal/service"
	"github.com/pixgate-systems/pixgate/internal/webhook"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the webhook gateway",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("config", "", "path to config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.New(
		logging.ParseLevel(cfg.Logging.Level),
		cfg.Logging.Format,
	).With(logging.Service("pixgate"))
	logging.SetDefault(logger)

	slog.Info("Starting webhook gateway",
		slog.Int("port", cfg.Server.Port),
		slog.String("auth_mode", cfg.Auth.Mode),
		slog.Int("subscriptions", len(cfg.Subscriptions)),
		slog.String("log_level", cfg.Logging.Level),
	)
	if configPath != "" {
		slog.Info("Loaded configuration", slog.String("config_path", configPath))
	}

	// Rate limiter
	var limiter ratelimit.RateLimiter
	if cfg.Redis.Enabled && cfg.RateLimit.Enabled {
		rl, err := ratelimit.NewRedisRateLimiter(cfg.Redis.URL, cfg.RateLimit.Requests, cfg.RateLimit.Window)
		if err != nil {
			slog.Warn("Failed to initialize Redis rate limiter, continuing without", slog.String("error", err.Error()))
			limiter = &ratelimit.NoOpRateLimiter{}
		} else {
			limiter = rl
			slog.Info("Rate limiting enabled",
				slog.Int("requests", cfg.RateLimit.Requests),
				slog.String("window", cfg.RateLimit.Window.String()),
			)
		}
	} else {
		limiter = &ratelimit.NoOpRateLimiter{}
		slog.Info("Rate limiting disabled")
	}
	defer limiter.Close()

	// Downstream sink
	var sink forwarder.Sink
	switch cfg.Forwarder.Backend {
	case "nats":
		natsCfg := forwarder.DefaultNATSConfig()
		natsCfg.URL = cfg.Forwarder.URL
		natsCfg.SubjectPrefix = cfg.Forwarder.SubjectPrefix
		natsCfg.Stream = cfg.Forwarder.Stream
		natsCfg.Timeout = cfg.Forwarder.Timeout

		natsSink, err := forwarder.NewNATSSink(cmd.Context(), natsCfg)
		if err != nil {
			return fmt.Errorf("failed to initialize NATS forwarder: %w", err)
		}
		sink = natsSink
		slog.Info("Forwarding to NATS JetStream",
			slog.String("url", cfg.Forwarder.URL),
			slog.String("stream", cfg.Forwarder.Stream),
		)
	case "log":
		sink = &forwarder.LogSink{Logger: logger}
		slog.Info("Forwarding to log")
	default:
		sink = forwarder.NoOpSink{}
		slog.Info("Forwarding disabled")
	}
	defer sink.Close()

	pipeline := service.New(
		cfg.WebhookAuth(),
		webhook.NewSubscriptions(cfg.Subscriptions...),
		sink,
		logger,
	)

	handler := handlers.NewWebhookHandler(pipeline, limiter, logger, cfg.Webhook.MaxBodySize)
	router := server.NewRouter(handler)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Webhook gateway listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-quit:
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.WriteTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("Server stopped")
	return nil
}
