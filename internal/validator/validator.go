// Package validator is the gate every public operation passes before any network call.
// Checks run in a fixed order and stop at the first missing field.
package validator

import (
	"strings"

	"github.com/aretw0/contentpub/pkg/domain"
)

// Field names as they appear in error messages.
const (
	FieldBasePath      = "base path"
	FieldPublishingApp = "publishing_app"
	FieldTitle         = "title"
	FieldContent       = "content"
	FieldLink          = "link"
)

// Field pairs a field name with the value supplied for it.
type Field struct {
	Name  string
	Value string
}

// Present reports whether v carries anything other than whitespace.
func Present(v string) bool {
	return strings.TrimSpace(v) != ""
}

// Required returns a *domain.ValidationError for the first field without a value.
func Required(fields ...Field) error {
	for _, f := range fields {
		if !Present(f.Value) {
			return &domain.ValidationError{Field: f.Name}
		}
	}
	return nil
}

// Unpublish checks the content id.
func Unpublish(contentID string) error {
	if !Present(contentID) {
		return domain.ErrContentIDMissing
	}
	return nil
}

// ReservePath checks both reservation parameters. Either one missing
// yields the same error.
func ReservePath(basePath, publishingApp string) error {
	if !Present(basePath) || !Present(publishingApp) {
		return domain.ErrDestinationMissing
	}
	return nil
}

// Transaction checks base path, publishing app, title, content and link, in that order.
func Transaction(basePath string, opts domain.TransactionOptions) error {
	return Required(
		Field{FieldBasePath, basePath},
		Field{FieldPublishingApp, opts.PublishingApp},
		Field{FieldTitle, opts.Title},
		Field{FieldContent, opts.Content},
		Field{FieldLink, opts.Link},
	)
}

// Answer checks base path, publishing app, title and content, in that order.
func Answer(basePath string, opts domain.AnswerOptions) error {
	return Required(
		Field{FieldBasePath, basePath},
		Field{FieldPublishingApp, opts.PublishingApp},
		Field{FieldTitle, opts.Title},
		Field{FieldContent, opts.Content},
	)
}

// Page checks a presenter-built payload before its draft is sent.
func Page(p domain.Payload) error {
	return Required(
		Field{FieldBasePath, p.BasePath},
		Field{FieldPublishingApp, p.PublishingApp},
		Field{FieldTitle, p.Title},
	)
}
