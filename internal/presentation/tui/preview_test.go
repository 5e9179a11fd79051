package tui

import (
	"bytes"
	"testing"

	"github.com/aretw0/contentpub/pkg/domain"
	"github.com/aretw0/contentpub/pkg/presentation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewMarkdown(t *testing.T) {
	flow := domain.Flow{
		Name:               "bridge-of-death",
		Title:              "The Bridge of Death",
		StartPageContentID: "start-id",
		FlowContentID:      "flow-id",
		Body:               "Answer me these questions three.",
		Nodes: []domain.FlowNode{
			{Slug: "what-is-your-quest", Title: "What is your quest?", Body: "To seek the Holy Grail."},
		},
	}

	md, err := PreviewMarkdown(presentation.NewFlowRegistration(flow, presentation.Options{}))
	require.NoError(t, err)

	assert.Contains(t, md, "# bridge-of-death")
	assert.Contains(t, md, "## 1. The Bridge of Death")
	assert.Contains(t, md, "`start-id`")
	assert.Contains(t, md, "`flow-id`")
	assert.Contains(t, md, "`/bridge-of-death/what-is-your-quest`")
	assert.Contains(t, md, "(generated on publish)")
	assert.Contains(t, md, "To seek the Holy Grail.")
	assert.Contains(t, md, "| start link | /bridge-of-death/y |")
}

func TestPreviewMarkdown_PropagatesPresenterErrors(t *testing.T) {
	flow := domain.Flow{Name: "broken", Title: "Broken", Nodes: []domain.FlowNode{{Title: "no slug"}}}
	_, err := PreviewMarkdown(presentation.NewFlowRegistration(flow, presentation.Options{}))
	assert.Error(t, err)
}

func TestRenderer(t *testing.T) {
	render, err := NewRenderer(80)
	require.NoError(t, err)

	out, err := render("# Hello\n\nworld")
	require.NoError(t, err)
	assert.Contains(t, out, "Hello")
}

func TestStatusLinesArePlainOffTerminal(t *testing.T) {
	var buf bytes.Buffer
	Success(&buf, "published %s", "content-id")
	Failure(&buf, "rejected")
	Notice(&buf, "dry run")

	assert.Equal(t, "✔ published content-id\n✘ rejected\ndry run\n", buf.String())
	assert.Equal(t, 72, Width(&buf, 72))
}
