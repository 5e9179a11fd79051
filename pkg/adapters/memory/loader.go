package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/aretw0/contentpub/pkg/domain"
	"github.com/aretw0/contentpub/pkg/ports"
)

// Loader implements ports.FlowLoader using an in-memory map.
type Loader struct {
	flows map[string]domain.Flow
}

var _ ports.FlowLoader = (*Loader)(nil)

// NewLoader creates a new Loader holding the given flows.
func NewLoader(flows ...domain.Flow) (*Loader, error) {
	data := make(map[string]domain.Flow, len(flows))
	for _, f := range flows {
		if f.Name == "" {
			return nil, fmt.Errorf("flow missing name")
		}
		if _, dup := data[f.Name]; dup {
			return nil, fmt.Errorf("duplicate flow %s", f.Name)
		}
		data[f.Name] = f
	}
	return &Loader{flows: data}, nil
}

// GetFlow retrieves a flow by name.
func (l *Loader) GetFlow(ctx context.Context, name string) (*domain.Flow, error) {
	f, ok := l.flows[name]
	if !ok {
		return nil, fmt.Errorf("flow not found: %s", name)
	}
	return &f, nil
}

// ListFlows returns all flow names.
func (l *Loader) ListFlows(ctx context.Context) ([]string, error) {
	keys := make([]string, 0, len(l.flows))
	for k := range l.flows {
		keys = append(keys, k)
	}
	sort.Strings(keys) // Deterministic order
	return keys, nil
}
