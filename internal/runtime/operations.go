package runtime

import (
	"context"
	"fmt"

	"github.com/aretw0/contentpub/internal/validator"
	"github.com/aretw0/contentpub/pkg/domain"
	"github.com/aretw0/contentpub/pkg/presentation"
)

// Unpublish withdraws contentID from public view.
func (e *Engine) Unpublish(ctx context.Context, contentID string) error {
	if err := validator.Unpublish(contentID); err != nil {
		return err
	}
	if err := e.store.Unpublish(ctx, contentID); err != nil {
		e.logger.ErrorContext(ctx, "unpublish request failed", "content_id", contentID, "err", err)
		return err
	}
	e.logger.InfoContext(ctx, "content unpublished", "content_id", contentID)
	if e.hooks.OnUnpublished != nil {
		ev := domain.NewContentEvent(domain.EventUnpublished)
		ev.ContentID = contentID
		e.hooks.OnUnpublished(ctx, ev)
	}
	return nil
}

// ReservePathForPublishingApp claims basePath for publishingApp.
func (e *Engine) ReservePathForPublishingApp(ctx context.Context, basePath, publishingApp string) error {
	if err := validator.ReservePath(basePath, publishingApp); err != nil {
		return err
	}
	if err := e.store.ReservePath(ctx, basePath, publishingApp); err != nil {
		e.logger.ErrorContext(ctx, "path reservation failed", "base_path", basePath, "err", err)
		return err
	}
	e.logger.InfoContext(ctx, "path reserved", "base_path", basePath, "publishing_app", publishingApp)
	if e.hooks.OnPathReserved != nil {
		ev := domain.NewContentEvent(domain.EventPathReserved)
		ev.BasePath = basePath
		ev.PublishingApp = publishingApp
		e.hooks.OnPathReserved(ctx, ev)
	}
	return nil
}

// PublishTransaction publishes a standalone transaction page under a fresh id
// and returns that id.
func (e *Engine) PublishTransaction(ctx context.Context, basePath string, opts domain.TransactionOptions) (string, error) {
	if err := validator.Transaction(basePath, opts); err != nil {
		return "", err
	}
	return e.publishStandalone(ctx, presentation.NewTransaction(basePath, opts, e.pages))
}

// PublishAnswer publishes a standalone answer page under a fresh id and
// returns that id.
func (e *Engine) PublishAnswer(ctx context.Context, basePath string, opts domain.AnswerOptions) (string, error) {
	if err := validator.Answer(basePath, opts); err != nil {
		return "", err
	}
	return e.publishStandalone(ctx, presentation.NewAnswer(basePath, opts, e.pages))
}

type payloadBuilder interface {
	Payload() (domain.Payload, error)
}

func (e *Engine) publishStandalone(ctx context.Context, page payloadBuilder) (string, error) {
	id, err := e.ids.NewID()
	if err != nil {
		return "", fmt.Errorf("failed to generate content id: %w", err)
	}
	payload, err := page.Payload()
	if err != nil {
		return "", err
	}
	if err := e.createThenPublish(ctx, id, payload); err != nil {
		return "", err
	}
	return id, nil
}
