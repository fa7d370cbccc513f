package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/vaporis/vaporis-site/internal/config"
	"github.com/vaporis/vaporis-site/internal/logger"
	"github.com/vaporis/vaporis-site/internal/renderer"
	"github.com/vaporis/vaporis-site/internal/services"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var serveFlags struct {
	configDir string
	port      string
	viewsDir  string
	staticDir string
}

// serveCmd starts the HTTP server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the site server",
	Long: `Loads configuration from the environment (and an optional .env file),
connects to the storage provider and serves the site until interrupted.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveFlags.configDir, "config", ".", "Directory holding the .env file")
	serveCmd.Flags().StringVar(&serveFlags.port, "port", "", "Port to listen on (overrides SERVER_PORT)")
	serveCmd.Flags().StringVar(&serveFlags.viewsDir, "views", "", "Templates directory (overrides SERVER_VIEWS_DIR)")
	serveCmd.Flags().StringVar(&serveFlags.staticDir, "static", "", "Static assets directory (overrides SERVER_STATIC_DIR)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	// 1. Configuration; missing storage settings stop here
	cfg, err := config.LoadConfig(serveFlags.configDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyServeFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// 2. Logger
	logg, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logg.Sync() }()
	zap.ReplaceGlobals(logg)

	// 3. Storage
	provider, err := services.NewProvider(cmd.Context(), cfg.Storage)
	if err != nil {
		logg.Error("Failed to create storage provider", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
		return err
	}
	timeout := time.Duration(cfg.Storage.TimeoutSeconds) * time.Second
	storage := services.NewStorage(provider, cfg.Storage.Driver, timeout, logg)

	// 4. Templates
	rend, err := renderer.New(cfg.Server.ViewsDir)
	if err != nil {
		logg.Error("Failed to parse templates", zap.String("dir", cfg.Server.ViewsDir), zap.Error(err))
		return err
	}

	e := newServer(serverDeps{
		Config:   cfg,
		Storage:  storage,
		Renderer: rend,
		Logger:   logg,
	})

	// 5. Start
	go func() {
		logg.Info("Starting server",
			zap.String("port", cfg.Server.Port),
			zap.String("driver", cfg.Storage.Driver),
			zap.String("bucket", cfg.Storage.Bucket),
		)
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// 6. Graceful shutdown
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logg.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func applyServeFlags(cfg *config.Config) {
	if serveFlags.port != "" {
		cfg.Server.Port = serveFlags.port
	}
	if serveFlags.viewsDir != "" {
		cfg.Server.ViewsDir = serveFlags.viewsDir
	}
	if serveFlags.staticDir != "" {
		cfg.Server.StaticDir = serveFlags.staticDir
	}
}
