package contentpub

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/contentpub/internal/logging"
	"github.com/aretw0/contentpub/internal/runtime"
	loamAdapter "github.com/aretw0/contentpub/pkg/adapters/loam"
	"github.com/aretw0/contentpub/pkg/domain"
	"github.com/aretw0/contentpub/pkg/identity"
	"github.com/aretw0/contentpub/pkg/ports"
	"github.com/aretw0/contentpub/pkg/presentation"
)

// Publisher is the high-level entry point of the library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Publisher struct {
	runtime *runtime.Engine
	store   ports.ContentStore
	ids     ports.IDGenerator
	locker  ports.DistributedLocker
	lockTTL time.Duration
	pages   presentation.Options
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
}

// Option defines a functional option for configuring the Publisher.
type Option func(*Publisher)

// WithStore sets the content store. Required.
func WithStore(store ports.ContentStore) Option {
	return func(p *Publisher) {
		p.store = store
	}
}

// WithIDGenerator replaces the random UUID generator.
func WithIDGenerator(ids ports.IDGenerator) Option {
	return func(p *Publisher) {
		p.ids = ids
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(p *Publisher) {
		p.hooks = hooks
	}
}

// WithLocker holds a distributed lock per flow while it is published.
func WithLocker(locker ports.DistributedLocker) Option {
	return func(p *Publisher) {
		p.locker = locker
	}
}

// WithLockTTL sets how long a flow lock outlives a crashed holder.
func WithLockTTL(ttl time.Duration) Option {
	return func(p *Publisher) {
		p.lockTTL = ttl
	}
}

// WithPageOptions sets the app, locale and update type stamped on pages.
func WithPageOptions(opts presentation.Options) Option {
	return func(p *Publisher) {
		p.pages = opts
	}
}

// New initializes a Publisher.
func New(opts ...Option) (*Publisher, error) {
	p := &Publisher{}
	for _, opt := range opts {
		opt(p)
	}

	if p.store == nil {
		return nil, fmt.Errorf("a content store is required")
	}
	if p.ids == nil {
		p.ids = identity.NewUUID()
	}
	if p.logger == nil {
		p.logger = logging.NewNop()
	}
	p.pages = p.pages.WithDefaults()

	runtimeOpts := []runtime.EngineOption{
		runtime.WithLogger(p.logger),
		runtime.WithLifecycleHooks(p.hooks),
		runtime.WithPageOptions(p.pages),
		runtime.WithLockTTL(p.lockTTL),
	}
	if p.locker != nil {
		runtimeOpts = append(runtimeOpts, runtime.WithLocker(p.locker))
	}
	p.runtime = runtime.NewEngine(p.store, p.ids, runtimeOpts...)
	return p, nil
}

// Publish publishes each flow of batch in order, aborting on the first error.
func (p *Publisher) Publish(ctx context.Context, batch []ports.FlowPresentation) error {
	return p.runtime.Publish(ctx, batch)
}

// PublishFlows loads the named flows (all of them when none is named) and publishes them.
func (p *Publisher) PublishFlows(ctx context.Context, loader ports.FlowLoader, names ...string) error {
	batch, err := presentation.LoadBatch(ctx, loader, p.pages, names...)
	if err != nil {
		return err
	}
	return p.Publish(ctx, batch)
}

// PublishDir publishes flows read from the definition files in dir.
func (p *Publisher) PublishDir(ctx context.Context, dir string, names ...string) error {
	loader, err := loamAdapter.Open(dir)
	if err != nil {
		return err
	}
	return p.PublishFlows(ctx, loader, names...)
}

// Unpublish withdraws contentID.
func (p *Publisher) Unpublish(ctx context.Context, contentID string) error {
	return p.runtime.Unpublish(ctx, contentID)
}

// ReservePathForPublishingApp claims basePath for publishingApp.
func (p *Publisher) ReservePathForPublishingApp(ctx context.Context, basePath, publishingApp string) error {
	return p.runtime.ReservePathForPublishingApp(ctx, basePath, publishingApp)
}

// PublishTransaction publishes a transaction page and returns its new id.
func (p *Publisher) PublishTransaction(ctx context.Context, basePath string, opts domain.TransactionOptions) (string, error) {
	return p.runtime.PublishTransaction(ctx, basePath, opts)
}

// PublishAnswer publishes an answer page and returns its new id.
func (p *Publisher) PublishAnswer(ctx context.Context, basePath string, opts domain.AnswerOptions) (string, error) {
	return p.runtime.PublishAnswer(ctx, basePath, opts)
}

// PageOptions returns the page settings in effect.
func (p *Publisher) PageOptions() presentation.Options {
	return p.pages
}
