package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LLM.Provider) {
	case "anthropic", "openai":
	default:
		return fmt.Errorf("llm.provider must be anthropic or openai (got %q)", c.LLM.Provider)
	}
	if c.LLM.APIKey == "" {
		return fmt.Errorf("llm.api_key is required")
	}
	if c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("llm.max_tokens must be > 0 (got %d)", c.LLM.MaxTokens)
	}

	switch c.Session.Driver {
	case "memory", "redis":
	default:
		return fmt.Errorf("session.driver must be memory or redis (got %q)", c.Session.Driver)
	}

	if err := c.Grounding.validate(); err != nil {
		return fmt.Errorf("grounding: %w", err)
	}

	if c.Usage.MonthlyLimit <= 0 {
		return fmt.Errorf("usage.monthly_limit must be > 0 (got %d)", c.Usage.MonthlyLimit)
	}

	return nil
}

func (g *GroundingConfig) validate() error {
	if g.HistoryTurns <= 0 || g.HistoryTurns > 10 {
		return fmt.Errorf("history_turns must be in 1..10 (got %d)", g.HistoryTurns)
	}
	if g.ArticleLimit <= 0 {
		return fmt.Errorf("article_limit must be > 0 (got %d)", g.ArticleLimit)
	}
	if g.ArticleBodyLimit <= 0 {
		return fmt.Errorf("article_body_limit must be > 0 (got %d)", g.ArticleBodyLimit)
	}
	if g.AnswerLength < 0 {
		return fmt.Errorf("answer_length must be >= 0 (got %d)", g.AnswerLength)
	}
	if g.NormalizeCacheSize < 0 {
		return fmt.Errorf("normalize_cache_size must be >= 0 (got %d)", g.NormalizeCacheSize)
	}
	return nil
}
