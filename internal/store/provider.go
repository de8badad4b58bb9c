package store

import (
	"context"
	"log/slog"
	"sync"

	"gorm.io/gorm"
)

// Dialer opens a new connection for every WithConn call and closes it before
// returning.
type Dialer struct {
	url    string
	policy RetryPolicy
	log    *slog.Logger
}

// NewDialer creates a per-call connection provider
func NewDialer(databaseURL string, policy RetryPolicy, log *slog.Logger) *Dialer {
	if log == nil {
		log = slog.Default()
	}
	return &Dialer{
		url:    databaseURL,
		policy: policy,
		log:    log,
	}
}

func (d *Dialer) WithConn(ctx context.Context, fn func(db *gorm.DB) error) error {
	db, err := connect(ctx, d.url, d.policy, d.log)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeDB(db); err != nil {
			d.log.Warn("failed to close database connection", "error", err)
		}
	}()
	return fn(db.WithContext(ctx))
}

// Close is a no-op; the Dialer holds nothing between calls.
func (d *Dialer) Close() error {
	return nil
}

// Pool keeps one gorm handle open and lends it to every call. The handle is
// opened on first use.
type Pool struct {
	url    string
	policy RetryPolicy
	log    *slog.Logger

	mu sync.Mutex
	db *gorm.DB
}

// NewPool creates a shared connection provider
func NewPool(databaseURL string, policy RetryPolicy, log *slog.Logger) *Pool {
	if log == nil {
		log = slog.Default()
	}
	return &Pool{
		url:    databaseURL,
		policy: policy,
		log:    log,
	}
}

// handle returns the shared handle, dialing it if needed. The dial runs
// without the lock so a slow or retrying dial does not queue other callers;
// when two dials race the first one installed wins.
func (p *Pool) handle(ctx context.Context) (*gorm.DB, error) {
	p.mu.Lock()
	db := p.db
	p.mu.Unlock()
	if db != nil {
		return db, nil
	}

	db, err := connect(ctx, p.url, p.policy, p.log)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.db != nil {
		if err := closeDB(db); err != nil {
			p.log.Warn("failed to close database connection", "error", err)
		}
		return p.db, nil
	}
	p.db = db
	return db, nil
}

func (p *Pool) WithConn(ctx context.Context, fn func(db *gorm.DB) error) error {
	db, err := p.handle(ctx)
	if err != nil {
		return err
	}
	return fn(db.WithContext(ctx))
}

func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.db == nil {
		return nil
	}
	err := closeDB(p.db)
	p.db = nil
	return err
}
