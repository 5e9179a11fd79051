package loam

// FlowMetadata represents the frontmatter of a flow definition file.
// The markdown body below the frontmatter is the start page introduction.
type FlowMetadata struct {
	Name               string `json:"name" mapstructure:"name"`
	Title              string `json:"title" mapstructure:"title"`
	Description        string `json:"description" mapstructure:"description"`
	StartPageContentID string `json:"start_page_content_id" mapstructure:"start_page_content_id"`
	FlowContentID      string `json:"flow_content_id" mapstructure:"flow_content_id"`
	StartButtonText    string `json:"start_button_text" mapstructure:"start_button_text"`

	HiddenSearchTerms    []string       `json:"hidden_search_terms" mapstructure:"hidden_search_terms"`
	ExternalRelatedLinks []LinkMetadata `json:"external_related_links" mapstructure:"external_related_links"`

	// Nodes holds either slugs (shorthand) or node maps.
	Nodes []any `json:"nodes" mapstructure:"nodes"`
}

type LinkMetadata struct {
	Title string `json:"title" mapstructure:"title"`
	URL   string `json:"url" mapstructure:"url"`
}

// NodeMetadata is the long form of a node entry.
type NodeMetadata struct {
	ContentID string `mapstructure:"content_id"`
	Slug      string `mapstructure:"slug"`
	Title     string `mapstructure:"title"`
	Body      string `mapstructure:"body"`
}
