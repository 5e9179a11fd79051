package ports

import (
	"context"

	"github.com/aretw0/contentpub/pkg/domain"
)

// FlowLoader defines how flow definitions are discovered.
// This allows the storage layer (Loam, Memory) to be decoupled.
type FlowLoader interface {
	// GetFlow retrieves a single flow by name.
	GetFlow(ctx context.Context, name string) (*domain.Flow, error)

	// ListFlows returns the names of every available flow, sorted.
	ListFlows(ctx context.Context) ([]string, error)
}
