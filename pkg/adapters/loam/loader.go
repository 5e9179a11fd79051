package loam

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/contentpub/pkg/domain"
	"github.com/aretw0/contentpub/pkg/ports"
	"github.com/aretw0/loam"
	"github.com/mitchellh/mapstructure"
)

// Loader adapts the Loam library to the FlowLoader interface.
type Loader struct {
	Repo *loam.TypedRepository[FlowMetadata]
}

var _ ports.FlowLoader = (*Loader)(nil)

// New creates a new Loam adapter.
func New(repo *loam.TypedRepository[FlowMetadata]) *Loader {
	return &Loader{
		Repo: repo,
	}
}

// Open initializes a read-only Loam repository at dir and wraps it.
func Open(dir string) (*Loader, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	// Strict mode keeps scalar types stable across YAML and JSON sources.
	// Publishing never modifies definitions, so the repository is opened read-only.
	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}
	return New(loam.NewTypedRepository[FlowMetadata](repo)), nil
}

// GetFlow retrieves a flow by name.
func (l *Loader) GetFlow(ctx context.Context, name string) (*domain.Flow, error) {
	flows, err := l.load(ctx)
	if err != nil {
		return nil, err
	}
	flow, ok := flows[name]
	if !ok {
		return nil, fmt.Errorf("flow not found: %s", name)
	}
	return flow, nil
}

// ListFlows returns the names of every flow, sorted.
func (l *Loader) ListFlows(ctx context.Context) ([]string, error) {
	flows, err := l.load(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(flows))
	for name := range flows {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (l *Loader) load(ctx context.Context) (map[string]*domain.Flow, error) {
	docs, err := l.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	flows := make(map[string]*domain.Flow, len(docs))
	seen := make(map[string]string, len(docs))
	for _, entry := range docs {
		// List carries metadata only; the body comes from Get.
		doc, err := l.Repo.Get(ctx, entry.ID)
		if err != nil {
			return nil, fmt.Errorf("loam get failed for %s: %w", entry.ID, err)
		}

		name := doc.Data.Name
		if name == "" {
			name = trimExtension(doc.ID)
		}

		if existing, ok := seen[name]; ok {
			return nil, fmt.Errorf("collision detected: flow '%s' is defined in both '%s' and '%s'", name, existing, doc.ID)
		}
		seen[name] = doc.ID

		flow, err := buildFlow(name, doc.Data, doc.Content)
		if err != nil {
			return nil, fmt.Errorf("flow %s: %w", name, err)
		}
		flows[name] = flow
	}
	return flows, nil
}

func buildFlow(name string, meta FlowMetadata, body string) (*domain.Flow, error) {
	flow := &domain.Flow{
		Name:               name,
		Title:              meta.Title,
		Description:        meta.Description,
		StartPageContentID: meta.StartPageContentID,
		FlowContentID:      meta.FlowContentID,
		StartButtonText:    meta.StartButtonText,
		HiddenSearchTerms:  meta.HiddenSearchTerms,
		Body:               strings.TrimSpace(body),
	}
	for _, link := range meta.ExternalRelatedLinks {
		flow.ExternalRelatedLinks = append(flow.ExternalRelatedLinks, domain.RelatedLink{Title: link.Title, URL: link.URL})
	}

	nodes, err := decodeNodes(meta.Nodes)
	if err != nil {
		return nil, err
	}
	flow.Nodes = nodes
	return flow, nil
}

// decodeNodes accepts a plain slug or an inline node definition per entry,
// preserving declaration order.
func decodeNodes(raw []any) ([]domain.FlowNode, error) {
	nodes := make([]domain.FlowNode, 0, len(raw))
	for i, item := range raw {
		switch v := item.(type) {
		case string:
			nodes = append(nodes, domain.FlowNode{Slug: v, Title: v})

		case map[string]any, map[any]any:
			var meta NodeMetadata
			if err := mapstructure.Decode(v, &meta); err != nil {
				return nil, fmt.Errorf("failed to decode node %d: %w", i, err)
			}
			if meta.Slug == "" {
				return nil, fmt.Errorf("node %d missing slug", i)
			}
			title := meta.Title
			if title == "" {
				title = meta.Slug
			}
			nodes = append(nodes, domain.FlowNode{
				ContentID: meta.ContentID,
				Slug:      meta.Slug,
				Title:     title,
				Body:      meta.Body,
			})

		default:
			return nil, fmt.Errorf("invalid node definition type: %T", v)
		}
	}
	return nodes, nil
}

func trimExtension(id string) string {
	ext := filepath.Ext(id)
	if ext != "" {
		return filepath.ToSlash(strings.TrimSuffix(id, ext))
	}
	return filepath.ToSlash(id)
}
