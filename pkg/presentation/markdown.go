package presentation

import (
	"bytes"
	"fmt"

	"github.com/aretw0/contentpub/pkg/domain"
	"github.com/yuin/goldmark"
)

var markdown = goldmark.New()

// RenderHTML converts markdown source into HTML.
func RenderHTML(src string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return buf.String(), nil
}

// bodyParts returns the source and HTML renditions of src, or nil for empty input.
func bodyParts(src string) ([]domain.BodyPart, error) {
	if src == "" {
		return nil, nil
	}
	html, err := RenderHTML(src)
	if err != nil {
		return nil, err
	}
	return []domain.BodyPart{
		{ContentType: domain.ContentTypeGovspeak, Content: src},
		{ContentType: domain.ContentTypeHTML, Content: html},
	}, nil
}
