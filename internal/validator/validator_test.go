package validator

import (
	"testing"

	"github.com/aretw0/contentpub/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func validTransaction() domain.TransactionOptions {
	return domain.TransactionOptions{
		PublishingApp: "publisher",
		Title:         "Sample transaction title",
		Content:       "Sample transaction content",
		Link:          "https://smaple.gov.uk/path/to/somewhere",
	}
}

func TestTransaction_FirstMissingFieldWins(t *testing.T) {
	tests := []struct {
		name     string
		basePath string
		mutate   func(*domain.TransactionOptions)
		want     string
	}{
		{"base path", "", func(o *domain.TransactionOptions) {}, "The base path isn't supplied"},
		{"publishing app", "/base-path", func(o *domain.TransactionOptions) { o.PublishingApp = "" }, "The publishing_app isn't supplied"},
		{"title", "/base-path", func(o *domain.TransactionOptions) { o.Title = "" }, "The title isn't supplied"},
		{"content", "/base-path", func(o *domain.TransactionOptions) { o.Content = "" }, "The content isn't supplied"},
		{"link", "/base-path", func(o *domain.TransactionOptions) { o.Link = "" }, "The link isn't supplied"},
		{"only first reported", "", func(o *domain.TransactionOptions) { *o = domain.TransactionOptions{} }, "The base path isn't supplied"},
		{"whitespace is missing", "/base-path", func(o *domain.TransactionOptions) { o.Title = "   " }, "The title isn't supplied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := validTransaction()
			tt.mutate(&opts)

			err := Transaction(tt.basePath, opts)
			assert.EqualError(t, err, tt.want)

			var vErr *domain.ValidationError
			assert.ErrorAs(t, err, &vErr)
		})
	}

	assert.NoError(t, Transaction("/base-path", validTransaction()))
}

func TestAnswer_DoesNotRequireLink(t *testing.T) {
	opts := domain.AnswerOptions{PublishingApp: "publisher", Title: "T", Content: "C"}
	assert.NoError(t, Answer("/base-path", opts))

	opts.Content = ""
	assert.EqualError(t, Answer("/base-path", opts), "The content isn't supplied")

	opts.PublishingApp = ""
	assert.EqualError(t, Answer("/base-path", opts), "The publishing_app isn't supplied")
}

func TestUnpublish(t *testing.T) {
	assert.NoError(t, Unpublish("content-id"))
	assert.ErrorIs(t, Unpublish(""), domain.ErrContentIDMissing)
	assert.EqualError(t, Unpublish(""), "Content id has not been supplied")
}

func TestReservePath_SharedMessage(t *testing.T) {
	assert.NoError(t, ReservePath("/base_path", "publisher"))
	assert.EqualError(t, ReservePath("", "publisher"), "The destination or path isn't supplied")
	assert.EqualError(t, ReservePath("/base_path", ""), "The destination or path isn't supplied")
	assert.ErrorIs(t, ReservePath("", ""), domain.ErrDestinationMissing)
}

func TestPage(t *testing.T) {
	p := domain.Payload{BasePath: "/flow", PublishingApp: "smartanswers", Title: "Flow"}
	assert.NoError(t, Page(p))

	p.Title = ""
	assert.EqualError(t, Page(p), "The title isn't supplied")
}
