package domain

// Flow is a flow registration as read from a flow definition.
// Nodes are kept in declaration order; that order is the publish order.
type Flow struct {
	Name                 string        `json:"name" yaml:"name" mapstructure:"name"`
	Title                string        `json:"title" yaml:"title" mapstructure:"title"`
	Description          string        `json:"description,omitempty" yaml:"description" mapstructure:"description"`
	StartPageContentID   string        `json:"start_page_content_id" yaml:"start_page_content_id" mapstructure:"start_page_content_id"`
	FlowContentID        string        `json:"flow_content_id" yaml:"flow_content_id" mapstructure:"flow_content_id"`
	StartButtonText      string        `json:"start_button_text,omitempty" yaml:"start_button_text" mapstructure:"start_button_text"`
	HiddenSearchTerms    []string      `json:"hidden_search_terms,omitempty" yaml:"hidden_search_terms" mapstructure:"hidden_search_terms"`
	ExternalRelatedLinks []RelatedLink `json:"external_related_links,omitempty" yaml:"external_related_links" mapstructure:"external_related_links"`
	Nodes                []FlowNode    `json:"nodes,omitempty" yaml:"nodes" mapstructure:"nodes"`

	// Body is the markdown shown on the start page.
	Body string `json:"body,omitempty" yaml:"-" mapstructure:"-"`
}

// FlowNode is a single page inside a flow.
// An empty ContentID means a fresh identifier is generated at publish time.
type FlowNode struct {
	ContentID string `json:"content_id,omitempty" yaml:"content_id" mapstructure:"content_id"`
	Slug      string `json:"slug" yaml:"slug" mapstructure:"slug"`
	Title     string `json:"title" yaml:"title" mapstructure:"title"`
	Body      string `json:"body" yaml:"body" mapstructure:"body"`
}
