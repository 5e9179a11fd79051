package presentation_test

import (
	"testing"

	"github.com/aretw0/contentpub/pkg/domain"
	"github.com/aretw0/contentpub/pkg/presentation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_Payload(t *testing.T) {
	tx := presentation.NewTransaction("/base-path", domain.TransactionOptions{
		PublishingApp: "publisher",
		Title:         "Sample transaction title",
		Content:       "Sample transaction content",
		Link:          "https://smaple.gov.uk/path/to/somewhere",
	}, presentation.Options{Locale: "cy"})

	assert.Empty(t, tx.ContentID())

	payload, err := tx.Payload()
	require.NoError(t, err)
	assert.Equal(t, "/base-path", payload.BasePath)
	assert.Equal(t, "publisher", payload.PublishingApp)
	assert.Equal(t, "cy", payload.Locale)
	assert.Equal(t, domain.SchemaTransaction, payload.SchemaName)
	assert.Equal(t, "https://smaple.gov.uk/path/to/somewhere", payload.Details.TransactionStartLink)
	assert.Equal(t, []domain.Route{{Path: "/base-path", Type: domain.RouteExact}}, payload.Routes)
	assert.Len(t, payload.Details.IntroductoryParagraph, 2)
}

func TestAnswer_Payload(t *testing.T) {
	answer := presentation.NewAnswer("/base-path", domain.AnswerOptions{
		PublishingApp: "publisher",
		Title:         "Sample answer title",
		Content:       "Sample answer content",
	}, presentation.Options{})

	payload, err := answer.Payload()
	require.NoError(t, err)
	assert.Equal(t, domain.SchemaAnswer, payload.SchemaName)
	assert.Equal(t, domain.KindAnswer, payload.Kind)
	assert.Empty(t, payload.Details.TransactionStartLink)
	require.Len(t, payload.Details.Body, 2)
	assert.Equal(t, "<p>Sample answer content</p>\n", payload.Details.Body[1].Content)
}

func TestRenderHTML(t *testing.T) {
	html, err := presentation.RenderHTML("# Title\n\nSome *text*.")
	require.NoError(t, err)
	assert.Contains(t, html, "<h1>Title</h1>")
	assert.Contains(t, html, "<em>text</em>")
}
