package llm

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// SchemaFor reflects a JSON Schema from the exported fields of v. Fields
// tagged omitempty are optional; all others are required.
func SchemaFor(name, description string, v any) (*Schema, error) {
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	s := reflector.Reflect(v)

	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal schema %s: %w", name, err)
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode schema %s: %w", name, err)
	}
	// Providers reject the draft URI and ids in response schemas.
	delete(doc, "$schema")
	delete(doc, "$id")

	return &Schema{Name: name, Description: description, JSON: doc}, nil
}

// MustSchemaFor is like SchemaFor but panics on error. Use for package-level schemas.
func MustSchemaFor(name, description string, v any) *Schema {
	s, err := SchemaFor(name, description, v)
	if err != nil {
		panic(err)
	}
	return s
}
