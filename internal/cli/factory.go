// Package cli assembles a Publisher and its collaborators from configuration.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/contentpub"
	"github.com/aretw0/contentpub/internal/config"
	"github.com/aretw0/contentpub/internal/logging"
	"github.com/aretw0/contentpub/pkg/adapters/memory"
	"github.com/aretw0/contentpub/pkg/adapters/publishingapi"
	"github.com/aretw0/contentpub/pkg/adapters/redis"
	"github.com/aretw0/contentpub/pkg/observability"
	"github.com/aretw0/contentpub/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
)

// App bundles what a command needs to talk to the content store.
type App struct {
	Config    *config.Config
	Logger    *slog.Logger
	Publisher *contentpub.Publisher
	Store     ports.ContentStore
	Registry  *prometheus.Registry
	Metrics   *observability.Metrics

	closers []func() error
}

type buildOptions struct {
	logWriter io.Writer
	store     ports.ContentStore
}

// Option adjusts how Build wires the App.
type Option func(*buildOptions)

// WithLogWriter sends logs to w instead of stderr.
func WithLogWriter(w io.Writer) Option {
	return func(o *buildOptions) {
		o.logWriter = w
	}
}

// WithStore bypasses the configured store.
func WithStore(store ports.ContentStore) Option {
	return func(o *buildOptions) {
		o.store = store
	}
}

// Build wires an App from cfg. Dry runs use the in-memory store; otherwise
// the publishing API client is used. A Redis URL enables the flow lock.
func Build(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	bo := buildOptions{logWriter: os.Stderr}
	for _, opt := range opts {
		opt(&bo)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:   cfg,
		Logger:   logging.NewWithWriter(bo.logWriter, level),
		Registry: prometheus.NewRegistry(),
	}
	app.Metrics = observability.NewMetrics(app.Registry)

	switch {
	case bo.store != nil:
		app.Store = bo.store
	case cfg.DryRun:
		app.Logger.Info("dry run, using in-memory store")
		app.Store = memory.NewStore()
	default:
		app.Store = publishingapi.New(cfg.PublishingAPI.URL,
			publishingapi.WithBearerToken(cfg.PublishingAPI.BearerToken),
			publishingapi.WithTimeout(cfg.PublishingAPI.Timeout),
			publishingapi.WithLogger(app.Logger),
		)
	}

	pubOpts := []contentpub.Option{
		contentpub.WithStore(app.Store),
		contentpub.WithLogger(app.Logger),
		contentpub.WithLifecycleHooks(observability.Combine(
			app.Metrics.Hooks(),
			observability.LoggingHooks(app.Logger),
		)),
		contentpub.WithLockTTL(cfg.LockTTL),
		contentpub.WithPageOptions(cfg.Pages),
	}

	if cfg.Redis.URL != "" {
		locker, err := redis.NewLockerFromURL(ctx, cfg.Redis.URL, cfg.Redis.Prefix)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		app.closers = append(app.closers, locker.Close)
		pubOpts = append(pubOpts, contentpub.WithLocker(locker))
	}

	app.Publisher, err = contentpub.New(pubOpts...)
	if err != nil {
		_ = app.Close()
		return nil, err
	}
	return app, nil
}

// Close releases connections opened by Build.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	a.closers = nil
	return errors.Join(errs...)
}
