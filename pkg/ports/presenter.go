package ports

import "github.com/aretw0/contentpub/pkg/domain"

// PagePresenter converts a single page into a payload.
type PagePresenter interface {
	// ContentID returns the pre-assigned identifier, or "" to have one generated.
	ContentID() string
	Payload() (domain.Payload, error)
}

// FlowPresentation is one element of a publish batch.
// The engine publishes StartPage first and then Nodes in the order returned.
type FlowPresentation interface {
	Name() string
	StartPageContentID() string
	FlowContentID() string
	ExternalRelatedLinks() []domain.RelatedLink
	StartPage() PagePresenter
	Nodes() []PagePresenter
}
