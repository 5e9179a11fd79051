package runtime

import (
	"log/slog"
	"time"

	"github.com/aretw0/contentpub/internal/logging"
	"github.com/aretw0/contentpub/pkg/domain"
	"github.com/aretw0/contentpub/pkg/ports"
	"github.com/aretw0/contentpub/pkg/presentation"
)

// DefaultLockTTL bounds how long a flow lock is held if the holder dies.
const DefaultLockTTL = 30 * time.Second

// Engine runs the publication protocol against a ContentStore.
// It holds no state between calls besides the flow guard.
type Engine struct {
	store  ports.ContentStore
	ids    ports.IDGenerator
	pages  presentation.Options
	hooks  domain.LifecycleHooks
	logger *slog.Logger
	guard  *flowGuard
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLocker serialises publication of the same flow across processes.
func WithLocker(locker ports.DistributedLocker) EngineOption {
	return func(e *Engine) {
		e.guard.locker = locker
	}
}

// WithLockTTL overrides DefaultLockTTL.
func WithLockTTL(ttl time.Duration) EngineOption {
	return func(e *Engine) {
		if ttl > 0 {
			e.guard.ttl = ttl
		}
	}
}

// WithPageOptions sets the defaults used for standalone pages.
func WithPageOptions(opts presentation.Options) EngineOption {
	return func(e *Engine) {
		e.pages = opts.WithDefaults()
	}
}

// NewEngine creates an engine over store, drawing fresh ids from ids.
func NewEngine(store ports.ContentStore, ids ports.IDGenerator, opts ...EngineOption) *Engine {
	e := &Engine{
		store:  store,
		ids:    ids,
		pages:  presentation.DefaultOptions(),
		logger: logging.NewNop(),
		guard:  newFlowGuard(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.guard.logger = e.logger
	return e
}
