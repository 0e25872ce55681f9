package skill

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/trendcurator-backend/internal/domain"
	"github.com/heartmarshall/trendcurator-backend/internal/service/trend"
)

type messages struct {
	onboarding      string
	followed        string // %s topic, %d remaining uses
	pending         string // %s topic
	limit           string
	apology         string
	help            string
	goodbye         string
	questionPrompt  string
	summaryHead     string // %s topic
	summaryTail     string
	detailMore      string
	detailDone      string
	invalidIndex    string // %s index list
	reflector       string // %s intent
	listSeparator   string
	listItemQuoting string // %d index
}

var english = messages{
	onboarding:      `Tell us the topics you want to follow. For example, say "Follow Generative AI."`,
	followed:        "%s has been followed. You have %d uses left this month. Please wait a moment and try reopening Trend Curator.",
	pending:         "News about %s is being prepared. Please try again a little later.",
	limit:           "You have reached this month's usage limit. Please try again next month.",
	apology:         "Sorry, I had trouble doing what you asked. Please try again.",
	help:            "You can ask me to follow a topic or request details about a trend. How can I assist?",
	goodbye:         "Goodbye!",
	questionPrompt:  "Do you have any questions about this news?",
	summaryHead:     "Topics related to %s.",
	summaryTail:     "If you would like to hear more details, please state the number, such as '1 for details.'",
	detailMore:      "Would you like to hear more details about another topic? Please state the number, such as '1 for details.'",
	detailDone:      "That's all for today's news, please wait for the next update.",
	invalidIndex:    "The specified index does not exist. Please choose an index from %s.",
	reflector:       "You just triggered %s.",
	listSeparator:   ", ",
	listItemQuoting: "'%d'",
}

var japanese = messages{
	onboarding:      "フォローしたいトピックを教えてください。たとえば、「生成AIをフォロー」と言ってみてください。",
	followed:        "%sをフォローしました。今月の残り利用回数は%d回です。しばらく時間をおいて、もう一度トレンドキュレーターを開いてみてください。",
	pending:         "%sのニュースを準備中です。しばらくしてからもう一度お試しください。",
	limit:           "今月の利用上限に達しました。来月またお試しください。",
	apology:         "すみません、うまく処理できませんでした。もう一度お試しください。",
	help:            "トピックのフォローや、トレンドの詳細を聞くことができます。どうしますか？",
	goodbye:         "さようなら。",
	questionPrompt:  "このニュースについて質問はありますか？",
	summaryHead:     "%sに関する話題です。",
	summaryTail:     "詳しい内容を聞きたいときは「ニュース『1』を詳しく」のように番号をお伝えください。",
	detailMore:      "他に詳しく聞きたい話題はありますか？「'1'を詳しく」のように番号をお伝えください。",
	detailDone:      "本日の話題は以上です。次の更新をお待ちください。",
	invalidIndex:    "指定された番号が存在しません。%sの番号から選んでください。",
	reflector:       "%sが呼び出されました。",
	listSeparator:   "、",
	listItemQuoting: "「%d」",
}

func messagesFor(l domain.Locale) messages {
	if l.IsJapanese() {
		return japanese
	}
	return english
}

// join concatenates spoken sentences with the locale's spacing.
func join(l domain.Locale, parts ...string) string {
	sep := " "
	if l.IsJapanese() {
		sep = ""
	}
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}

func (m messages) summary(l domain.Locale, s *trend.Summary) string {
	parts := []string{fmt.Sprintf(m.summaryHead, s.Topic)}
	for _, d := range s.Digests {
		parts = append(parts, fmt.Sprintf("%d: %s%s", d.Index, strings.TrimRight(d.Title, ".。"), l.FullStop()))
	}
	parts = append(parts, m.summaryTail)
	return join(l, parts...)
}

func (m messages) indexList(idx []int) string {
	items := make([]string, len(idx))
	for i, n := range idx {
		items[i] = fmt.Sprintf(m.listItemQuoting, n)
	}
	return strings.Join(items, m.listSeparator)
}
