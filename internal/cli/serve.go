package cli

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/pankajredekar/productapi/internal/api"
	"github.com/pankajredekar/productapi/internal/config"
	"github.com/pankajredekar/productapi/internal/product"
	"github.com/pankajredekar/productapi/internal/store"
	"github.com/pankajredekar/productapi/internal/utils"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  "Ensures the products table exists and serves the product API and frontend",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(configPath)
		if err != nil {
			utils.PrintError("%v", err)
			os.Exit(1)
		}

		log, err := newLogger(cfg)
		if err != nil {
			utils.PrintError("Failed to create logger: %v", err)
			os.Exit(1)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := serve(ctx, cfg, log, nil); err != nil {
			log.Error("server stopped", "error", err)
			os.Exit(1)
		}
	},
}

// serve bootstraps the table and runs the HTTP server until ctx is done.
// ready, when non-nil, receives the bound listen address.
func serve(ctx context.Context, cfg *config.Config, log *slog.Logger, ready func(addr string)) error {
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	// a broken database shows up as per-request errors, not a crash
	if err := bootstrapSchema(ctx, cfg, log); err != nil {
		log.Error("failed to create products table", store.ErrorAttrs(err)...)
	}

	provider := newProvider(cfg, log)
	defer closeProvider(provider, log)

	staticDir := cfg.StaticDir
	if staticDir != "" && !utils.DirExists(staticDir) {
		log.Warn("static directory not found, frontend disabled", "static_dir", staticDir)
		staticDir = ""
	}

	router := api.NewRouter(product.NewService(provider), api.Options{
		StaticDir:   staticDir,
		CORSOrigins: cfg.CORSOrigins,
		Logger:      log,
	})

	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return err
	}
	srv := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	log.Info("listening", "addr", ln.Addr().String(), "pooled", cfg.Pooled)
	if ready != nil {
		ready(ln.Addr().String())
	}

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
