package domain

import (
	"strings"
)

// NormalizeText prepares spoken text for storage and prompting:
//   - trims leading/trailing whitespace (including full-width spaces)
//   - compresses runs of whitespace into a single ASCII space
//
// Case is preserved: topics such as "AWS" or "Aurora" are proper nouns.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' || r == '\t' || r == '\n' || r == '　' {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteRune(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
