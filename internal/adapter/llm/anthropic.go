package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/trendcurator-backend/internal/domain"
)

// AnthropicGenerator implements Generator with the Claude Messages API.
// Structured requests embed the schema in the prompt and extract the JSON
// object from the reply.
type AnthropicGenerator struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

// NewAnthropicGenerator creates a generator for model.
func NewAnthropicGenerator(apiKey, baseURL, model string, maxTokens int64) *AnthropicGenerator {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &AnthropicGenerator{
		client:    anthropic.NewClient(opts...),
		model:     model,
		maxTokens: maxTokens,
	}
}

// Generate sends one user message and returns the first text block.
func (g *AnthropicGenerator) Generate(ctx context.Context, req Request) (string, error) {
	prompt := req.Prompt
	if req.Schema != nil {
		schemaJSON, err := json.Marshal(req.Schema.JSON)
		if err != nil {
			return "", fmt.Errorf("marshal schema %s: %w", req.Schema.Name, err)
		}
		prompt = fmt.Sprintf("%s\n\nOutput ONLY a valid JSON object matching this JSON Schema, no markdown, no explanations:\n%s",
			prompt, schemaJSON)
	}

	msg, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: g.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic %s call: %w: %w", req.Kind, domain.ErrGenerationFailed, err)
	}

	text, ok := firstText(msg.Content)
	if !ok {
		return "", fmt.Errorf("anthropic %s call: no text in response: %w", req.Kind, domain.ErrGenerationFailed)
	}

	if req.Schema == nil {
		return strings.TrimSpace(text), nil
	}

	jsonStr, err := extractJSON(text)
	if err != nil {
		return "", fmt.Errorf("anthropic %s call: %w: %w", req.Kind, domain.ErrMalformedResponse, err)
	}
	return jsonStr, nil
}

// firstText returns the first text block; thinking and tool blocks may precede it.
func firstText(blocks []anthropic.ContentBlockUnion) (string, bool) {
	for _, b := range blocks {
		if b.Type == "text" {
			return b.Text, true
		}
	}
	return "", false
}
