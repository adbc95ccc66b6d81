package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/nightowl-labs/homedash"
	"github.com/nightowl-labs/homedash/infrastructure/api"
	v1 "github.com/nightowl-labs/homedash/infrastructure/api/v1"
	"github.com/nightowl-labs/homedash/internal/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

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
  HOST                 Server host to bind to (default: 0.0.0.0)
  PORT                 Server port to listen on (default: 8080)
  DATA_DIR             Data directory (default: ~/.homedash)
  DB_URL               Database URL (default: sqlite:///{data_dir}/homedash.db)
  LOG_LEVEL            Log level: DEBUG, INFO, WARN, ERROR (default: INFO)
  LOG_FORMAT           Log format: pretty, json (default: pretty)

  NOTION_TOKEN         Source integration credential
  NOTION_BASE_URL      Source API base URL
  NOTION_VERSION       Source API version header
  NOTION_TIMEOUT       Source request timeout in seconds
  NOTION_MAX_RETRIES   Source retry attempts

  RELATION_RETRY_ATTEMPTS        Relation lookup attempts (default: 3)
  RELATION_RETRY_INITIAL_DELAY   First relation retry delay (default: 100ms)
  RELATION_RETRY_BACKOFF_FACTOR  Relation retry backoff factor (default: 2)

  SYNC_SECRETS         Comma-separated shared secrets for the sync webhook
  IDENTITY_HEADER      Trusted identity header name (default: X-Auth-User)
  MAPPINGS_FILE        Property mapping override YAML file

  BLOB_ENDPOINT        Object-storage endpoint (host:port); icon mirroring
                       is disabled when unset
  BLOB_ACCESS_KEY      Object-storage access key
  BLOB_SECRET_KEY      Object-storage secret key
  BLOB_USE_SSL         Use TLS for object storage (default: false)
  BLOB_PUBLIC_BASE_URL Public base URL for mirrored icons
  BLOB_ASSET_ICON_BUCKET  Bucket for asset icons
  BLOB_PLACE_ICON_BUCKET  Bucket for place icons`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(envFile, host, port)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().StringVar(&host, "host", "", "Server host to bind to (default: 0.0.0.0)")
	cmd.Flags().IntVar(&port, "port", 0, "Server port to listen on (default: 8080)")

	return cmd
}

func runServe(envFile, host string, port int) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}

	// Flags take precedence over env vars.
	if host != "" {
		cfg = cfg.WithHost(host)
	}
	if port != 0 {
		cfg = cfg.WithPort(port)
	}

	logger := log.New(cfg.LogLevel(), log.Format(cfg.LogFormat()))
	slogger := logger.Slog()

	slogger.Info("starting homedash",
		slog.String("version", version),
		slog.String("addr", cfg.Addr()),
		slog.String("data_dir", cfg.DataDir()),
	)

	client, err := homedash.NewFromConfig(cfg, slogger)
	if err != nil {
		return fmt.Errorf("create homedash client: %w", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			slogger.Error("failed to close homedash client", slog.Any("error", err))
		}
	}()

	server := api.NewServer(cfg.Addr(), slogger)
	v1.Register(server.Router(), client)

	server.Router().Get("/health", healthHandler)
	server.Router().Get("/healthz", healthHandler)
	server.Router().Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, `{"name":"homedash","version":"%s"}`, version)
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(server.Start)
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"healthy"}`))
}
