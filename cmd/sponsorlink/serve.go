package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/helixml/sponsorlink/application/service"
	"github.com/helixml/sponsorlink/infrastructure/api"
	"github.com/helixml/sponsorlink/infrastructure/provider"
	"github.com/helixml/sponsorlink/internal/config"
	"github.com/helixml/sponsorlink/internal/log"
)

// shutdownTimeout bounds how long in-flight requests may drain.
const shutdownTimeout = 30 * time.Second

func serveCmd() *cobra.Command {
	var (
		envFile string
		host    string
		port    int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the HTTP API server.

Configuration is loaded in the following order (later sources override earlier):
  1. Default values
  2. .env file (if --env-file specified or .env exists in current directory)
  3. Environment variables
  4. Command line flags

Environment variables:
  HOST                  Server host to bind to (default: 127.0.0.1)
  PORT                  Server port to listen on (default: 5000)
  LOG_LEVEL             Log level: DEBUG, INFO, WARN, ERROR (default: INFO)
  LOG_FORMAT            Log format: pretty, json (default: pretty)
  PROVIDER              Text provider: gemini, openai (default: gemini)
  CORS_ALLOWED_ORIGINS  Comma-separated allowed origins (default: *, any origin).
                        A narrower list is an optional deployment restriction;
                        the API itself does not require one.

  GEMINI_*              Gemini configuration
    API_KEY             API key, sent as the "key" query parameter
    BASE_URL            Base URL (default: https://generativelanguage.googleapis.com)
    MODEL               Model identifier (default: gemini-1.5-flash-latest)

  OPENAI_*              OpenAI-compatible configuration
    API_KEY             API key
    BASE_URL            Base URL (default: https://api.openai.com/v1)
    MODEL               Model identifier (default: gpt-4o-mini)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), envFile, host, port)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().StringVar(&host, "host", "", "Server host to bind to (default: 127.0.0.1)")
	cmd.Flags().IntVar(&port, "port", 0, "Server port to listen on (default: 5000)")

	return cmd
}

func runServe(ctx context.Context, envFile, host string, port int) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}

	// Flags take precedence over env vars.
	cfg = applyServeOverrides(cfg, host, port)

	logger := log.Configure(cfg)
	slogger := logger.Slog()

	attrs := append([]slog.Attr{slog.String("version", version)}, cfg.LogAttrs()...)
	slogger.LogAttrs(context.Background(), slog.LevelInfo, "starting sponsorlink", attrs...)

	if !cfg.ActiveEndpoint().HasAPIKey() {
		slogger.Warn("provider API key is not set, enhancement requests will fail",
			slog.String("provider", string(cfg.Provider())),
		)
	}

	enhancer := service.NewEnhancer(provider.FromConfig(cfg, slogger), slogger)
	apiServer := api.NewAPIServer(enhancer, cfg.AllowedOrigins(), slogger)

	server := api.NewServer(cfg.Addr(), slogger)
	apiServer.MountRoutes(server.Router())

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return serve(ctx, server.Start, server, slogger)
}

// shutdowner is the part of the HTTP server serve needs to stop it.
type shutdowner interface {
	Shutdown(ctx context.Context) error
}

// serve runs start until it returns or ctx is cancelled, then drains the
// server.
func serve(ctx context.Context, start func() error, server shutdowner, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(start)

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// applyServeOverrides applies command line flag overrides to the config.
func applyServeOverrides(cfg config.AppConfig, host string, port int) config.AppConfig {
	var opts []config.AppConfigOption

	if host != "" {
		opts = append(opts, config.WithHost(host))
	}
	if port != 0 {
		opts = append(opts, config.WithPort(port))
	}

	return cfg.Apply(opts...)
}
