package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ErrConnection is matched by every error caused by failing to obtain a
// database connection.
var ErrConnection = errors.New("database connection failed")

// ErrUnsupportedURL is returned for database URLs with an unknown scheme.
var ErrUnsupportedURL = errors.New("unsupported database URL")

// Provider lends a database connection for the duration of one call.
type Provider interface {
	// WithConn hands fn a connection bound to ctx and releases it once fn
	// returns, whatever the outcome.
	WithConn(ctx context.Context, fn func(db *gorm.DB) error) error
	Close() error
}

// dialector picks the gorm dialector from the URL scheme.
func dialector(databaseURL string) (gorm.Dialector, error) {
	switch {
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		return postgres.Open(databaseURL), nil
	case strings.HasPrefix(databaseURL, "sqlite://"):
		return sqlite.Open(strings.TrimPrefix(databaseURL, "sqlite://")), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedURL, redact(databaseURL))
}

// connect opens a gorm handle, retrying according to policy. gorm pings the
// database while opening so an unreachable server fails here.
func connect(ctx context.Context, databaseURL string, policy RetryPolicy, log *slog.Logger) (*gorm.DB, error) {
	d, err := dialector(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnection, err)
	}

	var db *gorm.DB
	err = policy.Do(ctx, func() error {
		var openErr error
		db, openErr = gorm.Open(d, &gorm.Config{Logger: NewGormLogger(log)})
		if openErr != nil && db != nil {
			// gorm hands back the half-initialised handle; release it
			_ = closeDB(db)
		}
		return openErr
	}, func(attempt int, err error) {
		log.Warn("database connection attempt failed",
			"attempt", attempt,
			"max_attempts", policy.MaxAttempts,
			"retry_in", policy.Delay,
			"error", err)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnection, err)
	}
	return db, nil
}

func closeDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// redact hides the password part of a URL so it can be logged.
func redact(databaseURL string) string {
	scheme, rest, ok := strings.Cut(databaseURL, "://")
	if !ok {
		return databaseURL
	}
	userinfo, host, ok := strings.Cut(rest, "@")
	if !ok {
		return databaseURL
	}
	if user, _, hasPass := strings.Cut(userinfo, ":"); hasPass {
		return scheme + "://" + user + ":xxxxx@" + host
	}
	return databaseURL
}
