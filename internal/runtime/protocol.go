package runtime

import (
	"context"

	"github.com/aretw0/contentpub/internal/validator"
	"github.com/aretw0/contentpub/pkg/domain"
)

// createThenPublish sends the draft for id and publishes it once the store
// accepted it. A rejected draft yields a *domain.CreationError and no publish call.
// Store errors are returned unchanged.
func (e *Engine) createThenPublish(ctx context.Context, id string, payload domain.Payload) error {
	payload.ContentID = id
	log := e.logger.With("content_id", id, "base_path", payload.BasePath, "kind", payload.Kind)

	resp, err := e.store.PutContent(ctx, id, payload)
	if err != nil {
		log.ErrorContext(ctx, "draft request failed", "err", err)
		return err
	}

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	if !resp.Success() {
		log.WarnContext(ctx, "draft rejected", "status", status)
		e.emit(ctx, e.hooks.OnDraftRejected, domain.EventDraftRejected, id, payload, status)
		return &domain.CreationError{ContentID: id, StatusCode: status}
	}
	e.emit(ctx, e.hooks.OnDraftCreated, domain.EventDraftCreated, id, payload, status)

	if err := e.store.Publish(ctx, id); err != nil {
		log.ErrorContext(ctx, "publish request failed", "err", err)
		return err
	}
	log.InfoContext(ctx, "content published")
	e.emit(ctx, e.hooks.OnPublished, domain.EventPublished, id, payload, status)
	return nil
}

// resolveID returns supplied when it carries a value, else a fresh id.
func (e *Engine) resolveID(supplied string) (string, error) {
	if validator.Present(supplied) {
		return supplied, nil
	}
	return e.ids.NewID()
}

func (e *Engine) emit(ctx context.Context, hook func(context.Context, *domain.ContentEvent), t domain.EventType, id string, payload domain.Payload, status int) {
	if hook == nil {
		return
	}
	ev := domain.NewContentEvent(t)
	ev.ContentID = id
	ev.BasePath = payload.BasePath
	ev.PublishingApp = payload.PublishingApp
	ev.Kind = payload.Kind
	ev.StatusCode = status
	hook(ctx, ev)
}
