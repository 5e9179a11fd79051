package http

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var rawSpec []byte

// Schema names in the embedded document.
const (
	SchemaContentPayload   = "ContentPayload"
	SchemaPublishRequest   = "PublishRequest"
	SchemaUnpublishRequest = "UnpublishRequest"
	SchemaPathReservation  = "PathReservation"
)

// RawSpec returns the embedded OpenAPI document.
func RawSpec() []byte {
	return rawSpec
}

// GetSpec parses and validates the embedded OpenAPI document.
func GetSpec() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("failed to load openapi spec: %w", err)
	}
	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("invalid openapi spec: %w", err)
	}
	return doc, nil
}

// bodyValidator checks request bodies against component schemas.
type bodyValidator struct {
	doc *openapi3.T
}

func (v *bodyValidator) validate(schema string, raw []byte) error {
	ref, ok := v.doc.Components.Schemas[schema]
	if !ok || ref.Value == nil {
		return fmt.Errorf("unknown schema %s", schema)
	}
	var value any
	if len(raw) == 0 {
		value = map[string]any{}
	} else if err := json.Unmarshal(raw, &value); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return ref.Value.VisitJSON(value)
}
