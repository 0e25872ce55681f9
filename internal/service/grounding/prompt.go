package grounding

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/trendcurator-backend/internal/domain"
)

type promptInput struct {
	locale       domain.Locale
	answerLength int
	history      []domain.ConversationTurn
	question     string
	introduction string
	articles     []domain.Article
}

func buildPrompt(in promptInput) string {
	var b strings.Builder

	b.WriteString("You are given the conversation so far, a new question, and articles to ground the answer in.\n")
	b.WriteString("Write a concise answer to the question under these rules:\n")
	b.WriteString("- Always include concrete proper nouns such as tool and product names.\n")
	b.WriteString("- The answer is read aloud. Avoid URLs, code and parenthetical notes.\n")
	b.WriteString("- Do not repeat information already given in the conversation.\n")
	if in.answerLength > 0 {
		fmt.Fprintf(&b, "- Keep the answer to about %d characters.\n", in.answerLength)
	}
	if in.locale.IsJapanese() {
		b.WriteString("- Write proper nouns in katakana rather than kanji or the Latin alphabet.\n")
	}
	fmt.Fprintf(&b, "- Answer in language code '%s'.\n", in.locale.Language)

	b.WriteString("\nconversation_history:\n")
	for _, t := range in.history {
		fmt.Fprintf(&b, "user: %s\nai: %s\n", t.Question, t.Answer)
	}

	if in.introduction != "" {
		fmt.Fprintf(&b, "\nintroduction: %s\n", in.introduction)
	}

	fmt.Fprintf(&b, "\nquestion: %s\n", in.question)

	b.WriteString("\narticles:\n")
	for _, a := range in.articles {
		fmt.Fprintf(&b, "title: %s\n", a.Title)
		if a.URL != "" {
			fmt.Fprintf(&b, "url: %s\n", a.URL)
		}
		fmt.Fprintf(&b, "body: %s\n", a.Body)
	}

	return b.String()
}
