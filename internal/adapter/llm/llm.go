// Package llm adapts hosted language models to the generation capability
// used by topic normalization and answer grounding.
package llm

import (
	"context"
	"fmt"
	"strings"
)

// Kinds of generation requests, used as metric and log labels.
const (
	KindAnswer    = "answer"
	KindNormalize = "normalize"
)

// Schema constrains a request to a single JSON object.
type Schema struct {
	Name        string
	Description string
	// JSON is the JSON Schema document as a generic map.
	JSON map[string]any
}

// Request is one synchronous generation call.
type Request struct {
	Kind   string
	Prompt string
	// Schema switches the call into structured mode. Nil means free text.
	Schema *Schema
}

// Generator produces text (or a JSON object when Schema is set) for a prompt.
// Implementations wrap transport and provider failures in domain.ErrGenerationFailed.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// extractJSON finds the first complete JSON object in a string.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}
