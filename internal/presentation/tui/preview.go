package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/contentpub/pkg/domain"
	"github.com/aretw0/contentpub/pkg/ports"
)

// PreviewMarkdown describes every page flow would publish, in publish order.
func PreviewMarkdown(flow ports.FlowPresentation) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", flow.Name())

	pages := append([]ports.PagePresenter{flow.StartPage()}, flow.Nodes()...)
	ids := make([]string, len(pages))
	ids[0] = flow.StartPageContentID()
	for i := 1; i < len(pages); i++ {
		ids[i] = pages[i].ContentID()
	}

	for i, page := range pages {
		payload, err := page.Payload()
		if err != nil {
			return "", err
		}
		writePage(&b, i+1, ids[i], payload)
	}
	return b.String(), nil
}

func writePage(b *strings.Builder, n int, id string, p domain.Payload) {
	if id == "" {
		id = "(generated on publish)"
	}
	fmt.Fprintf(b, "## %d. %s\n\n", n, p.Title)
	fmt.Fprintf(b, "| | |\n|---|---|\n")
	fmt.Fprintf(b, "| content id | `%s` |\n", id)
	fmt.Fprintf(b, "| base path | `%s` |\n", p.BasePath)
	fmt.Fprintf(b, "| schema | %s |\n", p.SchemaName)
	if len(p.Routes) > 0 {
		fmt.Fprintf(b, "| route | %s (%s) |\n", p.Routes[0].Path, p.Routes[0].Type)
	}
	if p.Details.TransactionStartLink != "" {
		fmt.Fprintf(b, "| start link | %s |\n", p.Details.TransactionStartLink)
	}
	b.WriteString("\n")

	for _, part := range append(p.Details.IntroductoryParagraph, p.Details.Body...) {
		if part.ContentType == domain.ContentTypeGovspeak {
			b.WriteString(part.Content)
			b.WriteString("\n\n")
		}
	}
}
