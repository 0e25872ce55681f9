package domain

import (
	"time"
	"unicode/utf8"
)

// ArticleBodyLimit is the per-article character budget for generation prompts.
const ArticleBodyLimit = 2000

// Article is one retrieved news article.
type Article struct {
	Title string
	URL   string
	Body  string
}

// NewsContext is the curated news for a user's topic. It is produced by an
// external pipeline and only reset (never curated) by this service.
type NewsContext struct {
	UserID       string
	Keyword      string
	LanguageCode string
	Introduction string
	Articles     []Article
	UpdatedAt    time.Time
}

// HasArticles reports whether the pipeline has populated the context yet.
func (n NewsContext) HasArticles() bool {
	return len(n.Articles) > 0
}

// TruncateBody cuts body to at most limit characters (runes, not bytes).
func TruncateBody(body string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if utf8.RuneCountInString(body) <= limit {
		return body
	}
	n := 0
	for i := range body {
		if n == limit {
			return body[:i]
		}
		n++
	}
	return body
}

// Truncated returns a copy of a with its body cut to limit characters.
func (a Article) Truncated(limit int) Article {
	a.Body = TruncateBody(a.Body, limit)
	return a
}
