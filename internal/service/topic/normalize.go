package topic

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/trendcurator-backend/internal/adapter/llm"
	"github.com/heartmarshall/trendcurator-backend/internal/domain"
)

// normalizeResponse is the structured output requested from the model.
type normalizeResponse struct {
	IsTechnicalTerm bool   `json:"is_technical_term,omitempty" jsonschema:"description=Whether text is a technical term"`
	OriginalText    string `json:"original_text" jsonschema:"description=The text exactly as provided"`
	TransformedText string `json:"transformed_text" jsonschema:"description=The text in its correct technical-term notation"`
	Reading         string `json:"reading" jsonschema:"description=Phonetic reading of transformed_text in the region's language"`
}

// rawNormalizeResponse detects absent fields before defaults apply.
type rawNormalizeResponse struct {
	IsTechnicalTerm *bool   `json:"is_technical_term"`
	OriginalText    *string `json:"original_text"`
	TransformedText *string `json:"transformed_text"`
	Reading         *string `json:"reading"`
}

var normalizeSchema = llm.MustSchemaFor(
	"topic_normalization",
	"Canonical technical-term form of a speech-recognized topic phrase",
	&normalizeResponse{},
)

// Normalize turns a spoken phrase into a canonical topic term, a phonetic
// reading and a technical-term judgment. It has no side effects besides
// the in-process cache.
func (s *Service) Normalize(ctx context.Context, rawTopic, regionCode string) (domain.NormalizedTopic, error) {
	rawTopic = domain.NormalizeText(rawTopic)
	key := regionCode + "\x00" + rawTopic
	if s.cache != nil {
		if n, ok := s.cache.Get(key); ok {
			return n, nil
		}
	}

	out, err := s.gen.Generate(ctx, llm.Request{
		Kind:   llm.KindNormalize,
		Prompt: buildNormalizePrompt(rawTopic, regionCode),
		Schema: normalizeSchema,
	})
	if err != nil {
		s.log.ErrorContext(ctx, "topic normalization failed",
			slog.String("raw_topic", rawTopic), slog.String("error", err.Error()))
		return domain.NormalizedTopic{}, fmt.Errorf("normalize topic: %w", err)
	}

	n, err := s.parseNormalized(ctx, rawTopic, out)
	if err != nil {
		s.log.ErrorContext(ctx, "malformed normalizer output",
			slog.String("raw_topic", rawTopic), slog.String("error", err.Error()))
		return domain.NormalizedTopic{}, fmt.Errorf("normalize topic: %w", err)
	}

	if s.cache != nil {
		s.cache.Add(key, n)
	}
	return n, nil
}

func (s *Service) parseNormalized(ctx context.Context, rawTopic, out string) (domain.NormalizedTopic, error) {
	var r rawNormalizeResponse
	if err := json.Unmarshal([]byte(out), &r); err != nil {
		return domain.NormalizedTopic{}, fmt.Errorf("%w: %w", domain.ErrMalformedResponse, err)
	}

	n := domain.NormalizedTopic{
		OriginalText:    deref(r.OriginalText),
		TransformedText: strings.TrimSpace(deref(r.TransformedText)),
		Reading:         strings.TrimSpace(deref(r.Reading)),
	}
	if r.IsTechnicalTerm != nil {
		n.IsTechnicalTerm = *r.IsTechnicalTerm
	}

	if err := n.Validate(); err != nil {
		if s.cfg.Strict {
			return domain.NormalizedTopic{}, fmt.Errorf("%w: %w", domain.ErrMalformedResponse, err)
		}
		s.log.WarnContext(ctx, "normalizer output incomplete, applying defaults",
			slog.String("raw_topic", rawTopic), slog.String("error", err.Error()))
		if n.TransformedText == "" {
			n.TransformedText = rawTopic
		}
		if n.Reading == "" {
			n.Reading = rawTopic
		}
	}
	// The stored original is always the phrase as heard.
	n.OriginalText = rawTopic
	return n, nil
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func buildNormalizePrompt(text, regionCode string) string {
	lines := []string{
		"Analyze the provided string according to the following instructions.",
		"- You are given text obtained from speech recognition and a region_code.",
		"- Output the following fields:",
		"  - is_technical_term: whether text is a technical term",
		"  - original_text: text exactly as provided",
		"  - transformed_text: text converted to its correct notation as a technical term",
		"  - reading: the correct phonetic reading of transformed_text, written in the language of the region",
		"- If text is a polysemous word, transformed_text is text followed by a space and a word that makes the meaning clear.",
		"  - Example: 「オーロラ」=>「Aurora AWS」",
		"- If the intended technical term can be inferred from the sound of text, transformed_text is that technical term.",
		"  - Example: 「先生へ愛」=>「生成AI」",
		"  - When text was most likely meant as a technical term, set is_technical_term to true.",
		"Example 1:",
		"- input: {text: '先生へ愛', region_code: 'JP'}",
		"- output: {is_technical_term: true, original_text: '先生へ愛', transformed_text: '生成AI', reading: 'せいせいえーあい'}",
		"Example 2:",
		"- input: {text: '図書館', region_code: 'JP'}",
		"- output: {is_technical_term: false, original_text: '図書館', transformed_text: '図書館', reading: 'としょかん'}",
		"",
		"Provided information:",
		"- text: " + text,
		"- region_code: " + regionCode,
	}
	return strings.Join(lines, "\n")
}
