package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/pankajredekar/productapi/internal/config"
	"github.com/pankajredekar/productapi/internal/logging"
	"github.com/pankajredekar/productapi/internal/store"
)

// loadConfig reads and validates the configuration named by --config.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*slog.Logger, error) {
	return logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
}

// newProvider returns the per-request connection provider.
func newProvider(cfg *config.Config, log *slog.Logger) store.Provider {
	policy := cfg.RequestRetry.Policy()
	if cfg.Pooled {
		return store.NewPool(cfg.DatabaseURL, policy, log)
	}
	return store.NewDialer(cfg.DatabaseURL, policy, log)
}

func closeProvider(provider store.Provider, log *slog.Logger) {
	if err := provider.Close(); err != nil {
		log.Warn("failed to close database connection", "error", err)
	}
}

// bootstrapSchema makes sure the products table exists, retrying the
// connection according to bootstrap_retry.
func bootstrapSchema(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	dialer := store.NewDialer(cfg.DatabaseURL, cfg.BootstrapRetry.Policy(), log)
	if err := store.EnsureSchema(ctx, dialer); err != nil {
		return err
	}
	log.Info("table checked/created", "table", store.ProductsTable)
	return nil
}
