package domain

import "strings"

// Locale is a voice-platform locale split into language and region codes,
// e.g. "ja-JP" or "en-US".
type Locale struct {
	Language string
	Region   string
}

// DefaultLocale is used when the platform omits the locale.
var DefaultLocale = Locale{Language: "en", Region: "US"}

// ParseLocale parses a "language-region" tag. An empty tag yields DefaultLocale.
func ParseLocale(tag string) (Locale, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return DefaultLocale, nil
	}
	lang, region, ok := strings.Cut(tag, "-")
	if !ok || lang == "" || region == "" {
		return Locale{}, NewValidationError("locale", "expected language-region, got "+tag)
	}
	return Locale{Language: strings.ToLower(lang), Region: strings.ToUpper(region)}, nil
}

func (l Locale) String() string {
	return l.Language + "-" + l.Region
}

// IsJapanese reports whether prompts and messages should be rendered in Japanese.
func (l Locale) IsJapanese() bool {
	return l.Language == "ja"
}

// QuestionTerminator returns the character that marks a sentence as a question.
func (l Locale) QuestionTerminator() string {
	if l.IsJapanese() {
		return "？"
	}
	return "?"
}

// FullStop returns the sentence terminator used when joining spoken items.
func (l Locale) FullStop() string {
	if l.IsJapanese() {
		return "。"
	}
	return "."
}

// EnsureQuestion appends the locale's question terminator unless q already
// ends with one. Both the full-width and ASCII marks are accepted as terminators.
// An empty question is returned unchanged.
func EnsureQuestion(q string, l Locale) string {
	q = NormalizeText(q)
	if q == "" {
		return ""
	}
	if strings.HasSuffix(q, "?") || strings.HasSuffix(q, "？") {
		return q
	}
	return q + l.QuestionTerminator()
}
