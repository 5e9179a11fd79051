package runtime

import (
	"context"
	"fmt"
	"reflect"

	"github.com/aretw0/contentpub/internal/validator"
	"github.com/aretw0/contentpub/pkg/domain"
	"github.com/aretw0/contentpub/pkg/ports"
)

// Publish publishes every element of batch in order: the start page under
// the flow's start page id, then each node page. The first error aborts the
// rest of the batch; pages already published stay published. A nil or
// unnamed element rejects the whole batch before any call is made.
func (e *Engine) Publish(ctx context.Context, batch []ports.FlowPresentation) error {
	if err := checkBatch(batch); err != nil {
		return err
	}
	for _, flow := range batch {
		err := e.guard.withLock(ctx, "flow:"+flow.Name(), func(ctx context.Context) error {
			return e.publishFlow(ctx, flow)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func checkBatch(batch []ports.FlowPresentation) error {
	for i, flow := range batch {
		if flow == nil {
			return fmt.Errorf("batch element %d is nil", i)
		}
		if v := reflect.ValueOf(flow); v.Kind() == reflect.Pointer && v.IsNil() {
			return fmt.Errorf("batch element %d is nil", i)
		}
		if !validator.Present(flow.Name()) {
			return &domain.ValidationError{Field: "flow name"}
		}
	}
	return nil
}

func (e *Engine) publishFlow(ctx context.Context, flow ports.FlowPresentation) error {
	e.logger.DebugContext(ctx, "publishing flow", "flow", flow.Name())

	start := flow.StartPage()
	if err := e.publishPage(ctx, flow.StartPageContentID(), start); err != nil {
		return err
	}
	for _, page := range flow.Nodes() {
		if err := e.publishPage(ctx, page.ContentID(), page); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) publishPage(ctx context.Context, id string, page ports.PagePresenter) error {
	payload, err := page.Payload()
	if err != nil {
		return err
	}
	if err := validator.Page(payload); err != nil {
		return err
	}
	id, err = e.resolveID(id)
	if err != nil {
		return fmt.Errorf("failed to generate content id: %w", err)
	}
	return e.createThenPublish(ctx, id, payload)
}
