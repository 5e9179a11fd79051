package presentation

import (
	"fmt"
	"strings"

	"github.com/aretw0/contentpub/pkg/domain"
	"github.com/aretw0/contentpub/pkg/ports"
)

// FlowRegistration presents a flow as one publish batch element.
type FlowRegistration struct {
	flow domain.Flow
	opts Options
}

var _ ports.FlowPresentation = (*FlowRegistration)(nil)

// NewFlowRegistration creates the presenter for flow.
func NewFlowRegistration(flow domain.Flow, opts Options) *FlowRegistration {
	return &FlowRegistration{flow: flow, opts: opts.WithDefaults()}
}

func (f *FlowRegistration) Name() string               { return f.flow.Name }
func (f *FlowRegistration) StartPageContentID() string { return f.flow.StartPageContentID }
func (f *FlowRegistration) FlowContentID() string      { return f.flow.FlowContentID }

func (f *FlowRegistration) ExternalRelatedLinks() []domain.RelatedLink {
	return f.flow.ExternalRelatedLinks
}

// StartPage returns the landing page presenter.
func (f *FlowRegistration) StartPage() ports.PagePresenter {
	return &StartPage{flow: f.flow, opts: f.opts}
}

// Nodes returns the flow page (if the flow has a content id) followed by the flow nodes.
func (f *FlowRegistration) Nodes() []ports.PagePresenter {
	pages := make([]ports.PagePresenter, 0, len(f.flow.Nodes)+1)
	if f.flow.FlowContentID != "" {
		pages = append(pages, &FlowPage{flow: f.flow, opts: f.opts})
	}
	for i := range f.flow.Nodes {
		pages = append(pages, &NodePage{flow: f.flow, node: f.flow.Nodes[i], opts: f.opts})
	}
	return pages
}

func flowPath(name string) string {
	return "/" + strings.Trim(name, "/")
}

// StartPage is the landing page of a flow.
type StartPage struct {
	flow domain.Flow
	opts Options
}

func (p *StartPage) ContentID() string { return p.flow.StartPageContentID }

func (p *StartPage) Payload() (domain.Payload, error) {
	intro, err := bodyParts(p.flow.Body)
	if err != nil {
		return domain.Payload{}, fmt.Errorf("start page of %s: %w", p.flow.Name, err)
	}
	base := flowPath(p.flow.Name)
	return domain.Payload{
		BasePath:      base,
		Title:         p.flow.Title,
		Description:   p.flow.Description,
		SchemaName:    domain.SchemaTransaction,
		DocumentType:  domain.SchemaTransaction,
		PublishingApp: p.opts.PublishingApp,
		RenderingApp:  p.opts.RenderingApp,
		Locale:        p.opts.Locale,
		UpdateType:    p.opts.UpdateType,
		Routes:        []domain.Route{{Path: base, Type: domain.RouteExact}},
		Details: domain.Details{
			IntroductoryParagraph: intro,
			TransactionStartLink:  base + "/y",
			StartButtonText:       p.flow.StartButtonText,
			ExternalRelatedLinks:  p.flow.ExternalRelatedLinks,
		},
		Kind: domain.KindStartPage,
	}, nil
}

// FlowPage is the page serving every question of a flow under /<name>/y.
type FlowPage struct {
	flow domain.Flow
	opts Options
}

func (p *FlowPage) ContentID() string { return p.flow.FlowContentID }

func (p *FlowPage) Payload() (domain.Payload, error) {
	base := flowPath(p.flow.Name) + "/y"
	return domain.Payload{
		BasePath:      base,
		Title:         p.flow.Title,
		Description:   p.flow.Description,
		SchemaName:    domain.SchemaSmartAnswer,
		DocumentType:  domain.SchemaSmartAnswer,
		PublishingApp: p.opts.PublishingApp,
		RenderingApp:  p.opts.RenderingApp,
		Locale:        p.opts.Locale,
		UpdateType:    p.opts.UpdateType,
		Routes:        []domain.Route{{Path: base, Type: domain.RoutePrefix}},
		Details: domain.Details{
			HiddenSearchTerms:    p.flow.HiddenSearchTerms,
			ExternalRelatedLinks: p.flow.ExternalRelatedLinks,
		},
		Kind: domain.KindFlow,
	}, nil
}

// NodePage is a single node of a flow, published under /<name>/<slug>.
type NodePage struct {
	flow domain.Flow
	node domain.FlowNode
	opts Options
}

func (p *NodePage) ContentID() string { return p.node.ContentID }

func (p *NodePage) Payload() (domain.Payload, error) {
	slug := strings.Trim(p.node.Slug, "/")
	if slug == "" {
		return domain.Payload{}, fmt.Errorf("flow %s: node %q has no slug", p.flow.Name, p.node.Title)
	}
	body, err := bodyParts(p.node.Body)
	if err != nil {
		return domain.Payload{}, fmt.Errorf("node %s of %s: %w", slug, p.flow.Name, err)
	}
	base := flowPath(p.flow.Name) + "/" + slug
	return domain.Payload{
		BasePath:      base,
		Title:         p.node.Title,
		SchemaName:    domain.SchemaSmartAnswer,
		DocumentType:  domain.SchemaSmartAnswer,
		PublishingApp: p.opts.PublishingApp,
		RenderingApp:  p.opts.RenderingApp,
		Locale:        p.opts.Locale,
		UpdateType:    p.opts.UpdateType,
		Routes:        []domain.Route{{Path: base, Type: domain.RouteExact}},
		Details:       domain.Details{Body: body},
		Kind:          domain.KindNode,
	}, nil
}
