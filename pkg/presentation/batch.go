package presentation

import (
	"context"
	"fmt"

	"github.com/aretw0/contentpub/pkg/ports"
)

// LoadBatch reads the named flows from loader and presents them in the given order.
// With no names, every flow the loader lists is included.
func LoadBatch(ctx context.Context, loader ports.FlowLoader, opts Options, names ...string) ([]ports.FlowPresentation, error) {
	if len(names) == 0 {
		all, err := loader.ListFlows(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list flows: %w", err)
		}
		names = all
	}

	batch := make([]ports.FlowPresentation, 0, len(names))
	for _, name := range names {
		flow, err := loader.GetFlow(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to load flow %s: %w", name, err)
		}
		batch = append(batch, NewFlowRegistration(*flow, opts))
	}
	return batch, nil
}
