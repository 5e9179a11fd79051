package domain

import "net/http"

// Schema and document type names understood by the content store.
const (
	SchemaTransaction = "transaction"
	SchemaAnswer      = "answer"
	SchemaSmartAnswer = "smart_answer"
)

// Route types.
const (
	RouteExact  = "exact"
	RoutePrefix = "prefix"
)

// Body content types. A body part is sent in both forms so renderers can pick one.
const (
	ContentTypeGovspeak = "text/govspeak"
	ContentTypeHTML     = "text/html"
)

// UnpublishGone is the unpublishing type sent when an item is withdrawn.
const UnpublishGone = "gone"

// Kind classifies a payload for logging and metrics.
type Kind string

const (
	KindStartPage   Kind = "start_page"
	KindFlow        Kind = "flow"
	KindNode        Kind = "node"
	KindTransaction Kind = "transaction"
	KindAnswer      Kind = "answer"
)

// Route maps a path to the content item.
type Route struct {
	Path string `json:"path"`
	Type string `json:"type"`
}

// BodyPart is one rendition of a piece of body content.
type BodyPart struct {
	ContentType string `json:"content_type"`
	Content     string `json:"content"`
}

// RelatedLink is an external link shown next to a page.
type RelatedLink struct {
	Title string `json:"title" yaml:"title" mapstructure:"title"`
	URL   string `json:"url" yaml:"url" mapstructure:"url"`
}

// Details holds the schema specific part of a payload.
type Details struct {
	Body                  []BodyPart    `json:"body,omitempty"`
	IntroductoryParagraph []BodyPart    `json:"introductory_paragraph,omitempty"`
	TransactionStartLink  string        `json:"transaction_start_link,omitempty"`
	StartButtonText       string        `json:"start_button_text,omitempty"`
	ExternalRelatedLinks  []RelatedLink `json:"external_related_links,omitempty"`
	HiddenSearchTerms     []string      `json:"hidden_search_terms,omitempty"`
}

// Payload is the record sent to the store when a draft is created.
// It is built fresh for every publish call and never persisted locally.
type Payload struct {
	ContentID     string  `json:"content_id"`
	BasePath      string  `json:"base_path"`
	Title         string  `json:"title"`
	Description   string  `json:"description,omitempty"`
	SchemaName    string  `json:"schema_name"`
	DocumentType  string  `json:"document_type"`
	PublishingApp string  `json:"publishing_app"`
	RenderingApp  string  `json:"rendering_app,omitempty"`
	Locale        string  `json:"locale"`
	UpdateType    string  `json:"update_type,omitempty"`
	Routes        []Route `json:"routes"`
	Details       Details `json:"details"`

	// Kind is local bookkeeping and is not sent over the wire.
	Kind Kind `json:"-"`
}

// Response is what the engine inspects after a draft call.
// Bodies are never parsed, only the status code is kept.
type Response struct {
	StatusCode int
}

// Success reports whether the store accepted the draft (any 2xx).
func (r *Response) Success() bool {
	return r != nil && r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// TransactionOptions are the named inputs of a standalone transaction page.
type TransactionOptions struct {
	PublishingApp string `json:"publishing_app"`
	Title         string `json:"title"`
	Content       string `json:"content"`
	Link          string `json:"link"`
}

// AnswerOptions are the named inputs of a standalone answer page.
type AnswerOptions struct {
	PublishingApp string `json:"publishing_app"`
	Title         string `json:"title"`
	Content       string `json:"content"`
}
