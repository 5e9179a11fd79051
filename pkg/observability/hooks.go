package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/contentpub/pkg/domain"
)

// LoggingHooks logs every lifecycle event on logger.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	log := func(level slog.Level) func(context.Context, *domain.ContentEvent) {
		return func(ctx context.Context, e *domain.ContentEvent) {
			logger.Log(ctx, level, string(e.Type),
				"content_id", e.ContentID,
				"base_path", e.BasePath,
				"publishing_app", e.PublishingApp,
				"kind", e.Kind,
				"status", e.StatusCode,
			)
		}
	}
	return domain.LifecycleHooks{
		OnDraftCreated:  log(slog.LevelDebug),
		OnDraftRejected: log(slog.LevelWarn),
		OnPublished:     log(slog.LevelInfo),
		OnUnpublished:   log(slog.LevelInfo),
		OnPathReserved:  log(slog.LevelInfo),
	}
}

// Combine returns hooks that call each of sets in order. Nil callbacks are skipped.
func Combine(sets ...domain.LifecycleHooks) domain.LifecycleHooks {
	pick := func(get func(domain.LifecycleHooks) func(context.Context, *domain.ContentEvent)) func(context.Context, *domain.ContentEvent) {
		var fns []func(context.Context, *domain.ContentEvent)
		for _, s := range sets {
			if fn := get(s); fn != nil {
				fns = append(fns, fn)
			}
		}
		if len(fns) == 0 {
			return nil
		}
		return func(ctx context.Context, e *domain.ContentEvent) {
			for _, fn := range fns {
				fn(ctx, e)
			}
		}
	}
	return domain.LifecycleHooks{
		OnDraftCreated:  pick(func(h domain.LifecycleHooks) func(context.Context, *domain.ContentEvent) { return h.OnDraftCreated }),
		OnDraftRejected: pick(func(h domain.LifecycleHooks) func(context.Context, *domain.ContentEvent) { return h.OnDraftRejected }),
		OnPublished:     pick(func(h domain.LifecycleHooks) func(context.Context, *domain.ContentEvent) { return h.OnPublished }),
		OnUnpublished:   pick(func(h domain.LifecycleHooks) func(context.Context, *domain.ContentEvent) { return h.OnUnpublished }),
		OnPathReserved:  pick(func(h domain.LifecycleHooks) func(context.Context, *domain.ContentEvent) { return h.OnPathReserved }),
	}
}
