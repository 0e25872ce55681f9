package skill

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/heartmarshall/trendcurator-backend/internal/adapter/scratch"
	"github.com/heartmarshall/trendcurator-backend/internal/domain"
	"github.com/heartmarshall/trendcurator-backend/internal/service/grounding"
	"github.com/heartmarshall/trendcurator-backend/internal/service/topic"
)

// launch greets with the news introduction when articles are ready, the
// trend summary when a trend exists, and onboarding when nothing is followed.
func (h *Handler) launch(ctx context.Context, t *turn) *ResponseEnvelope {
	followed, err := h.topics.GetTopic(ctx, t.userID)
	if err != nil {
		return h.speakError(ctx, t, err)
	}

	news, err := h.news.Context(ctx, t.userID)
	switch {
	case err == nil && news.HasArticles():
		return h.introduce(ctx, t)
	case err != nil && !errors.Is(err, domain.ErrNotFound):
		return h.speakError(ctx, t, err)
	}

	resp := h.trendSummary(ctx, t)
	if resp != nil {
		return resp
	}
	return tell(fmt.Sprintf(t.msg.pending, followed.Topic))
}

// introduce generates the topic introduction and keeps it for later
// questions in the same session.
func (h *Handler) introduce(ctx context.Context, t *turn) *ResponseEnvelope {
	ans, err := h.answers.Answer(ctx, grounding.AnswerInput{UserID: t.userID, Locale: t.locale})
	if err != nil {
		return h.speakError(ctx, t, err)
	}
	h.remember(ctx, t, scratch.KeyIntroduction, ans.Text)
	h.remember(ctx, t, scratch.KeyLastAnswer, ans.Text)
	return ask(join(t.locale, ans.Text, t.msg.questionPrompt), t.msg.questionPrompt)
}

func (h *Handler) setTopic(ctx context.Context, t *turn) *ResponseEnvelope {
	raw := t.env.SlotValue(SlotTopic)
	if raw == "" {
		return ask(t.msg.onboarding, t.msg.onboarding)
	}

	res, err := h.topics.Follow(ctx, topic.FollowInput{
		UserID:   t.userID,
		RawTopic: raw,
		Locale:   t.locale.String(),
	})
	if err != nil {
		return h.speakError(ctx, t, err)
	}

	if err := h.scratch.Delete(ctx, t.sessionID); err != nil {
		h.log.WarnContext(ctx, "drop session scratch failed",
			slog.String("user_id", t.userID), slog.String("error", err.Error()))
	}
	return tell(fmt.Sprintf(t.msg.followed, res.Topic.Topic, res.RemainingUsage))
}

func (h *Handler) question(ctx context.Context, t *turn) *ResponseEnvelope {
	q := t.env.SlotValue(SlotQuestion)
	if q == "" {
		return ask(t.msg.questionPrompt, t.msg.questionPrompt)
	}

	ans, err := h.answers.Answer(ctx, grounding.AnswerInput{
		UserID:       t.userID,
		Locale:       t.locale,
		Question:     q,
		Introduction: h.introduction(ctx, t),
	})
	if err != nil {
		return h.speakError(ctx, t, err)
	}
	h.remember(ctx, t, scratch.KeyLastAnswer, ans.Text)
	return ask(ans.Text, t.msg.questionPrompt)
}

// introduction returns the introduction spoken earlier in this session, or
// else the one stored with the curated news.
func (h *Handler) introduction(ctx context.Context, t *turn) string {
	if intro := h.recall(ctx, t)[scratch.KeyIntroduction]; intro != "" {
		return intro
	}

	news, err := h.news.Context(ctx, t.userID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			h.log.WarnContext(ctx, "read news introduction failed",
				slog.String("user_id", t.userID), slog.String("error", err.Error()))
		}
		return ""
	}
	return news.Introduction
}

func (h *Handler) catchUp(ctx context.Context, t *turn) *ResponseEnvelope {
	if _, err := h.topics.GetTopic(ctx, t.userID); err != nil {
		return h.speakError(ctx, t, err)
	}
	return h.introduce(ctx, t)
}

// trendSummary lists the digests and offers their indexes. It returns nil
// when the user follows a topic whose trend is not curated yet and no
// onboarding is needed; launch handles that case.
func (h *Handler) trendSummary(ctx context.Context, t *turn) *ResponseEnvelope {
	s, err := h.trends.Summary(ctx, t.userID)
	if errors.Is(err, domain.ErrNotFound) && t.env.Request.Type == RequestLaunch {
		return nil
	}
	if err != nil {
		return h.speakError(ctx, t, err)
	}

	text := t.msg.summary(t.locale, s)
	resp := ask(text, text)
	resp.SessionAttributes = withValidIndexes(t.env.Session.Attributes, s.ValidIndexes)
	return resp
}

func (h *Handler) trendDetail(ctx context.Context, t *turn) *ResponseEnvelope {
	valid := validIndexes(t.env.Session.Attributes)

	index, convErr := strconv.Atoi(t.env.SlotValue(SlotTrendDigestIndex))
	if convErr != nil {
		return h.invalidIndex(t, valid)
	}

	d, err := h.trends.Detail(ctx, t.userID, index, valid)
	if errors.Is(err, domain.ErrValidation) {
		return h.invalidIndex(t, valid)
	}
	if err != nil {
		return h.speakError(ctx, t, err)
	}

	h.remember(ctx, t, scratch.KeyLastAnswer, d.Digest.Body)
	if d.Done() {
		return tell(join(t.locale, d.Digest.Body, t.msg.detailDone))
	}
	text := join(t.locale, d.Digest.Body, t.msg.detailMore)
	resp := ask(text, t.msg.detailMore)
	resp.SessionAttributes = withValidIndexes(t.env.Session.Attributes, d.Remaining)
	return resp
}

func (h *Handler) invalidIndex(t *turn, valid []int) *ResponseEnvelope {
	text := fmt.Sprintf(t.msg.invalidIndex, t.msg.indexList(valid))
	resp := ask(text, text)
	resp.SessionAttributes = withValidIndexes(t.env.Session.Attributes, valid)
	return resp
}

func (h *Handler) repeat(ctx context.Context, t *turn) *ResponseEnvelope {
	last := h.recall(ctx, t)[scratch.KeyLastAnswer]
	if last == "" {
		return ask(t.msg.help, t.msg.help)
	}
	return ask(last, t.msg.questionPrompt)
}

func (h *Handler) sessionEnded(ctx context.Context, t *turn) *ResponseEnvelope {
	if err := h.scratch.Delete(ctx, t.sessionID); err != nil {
		h.log.WarnContext(ctx, "drop session scratch failed",
			slog.String("user_id", t.userID), slog.String("error", err.Error()))
	}
	return empty()
}

func (h *Handler) remember(ctx context.Context, t *turn, key, value string) {
	if err := h.scratch.Put(ctx, t.sessionID, key, value); err != nil {
		h.log.WarnContext(ctx, "session scratch write failed",
			slog.String("user_id", t.userID),
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}

func (h *Handler) recall(ctx context.Context, t *turn) map[string]string {
	values, err := h.scratch.Get(ctx, t.sessionID)
	if err != nil {
		h.log.WarnContext(ctx, "session scratch read failed",
			slog.String("user_id", t.userID), slog.String("error", err.Error()))
		return map[string]string{}
	}
	return values
}
