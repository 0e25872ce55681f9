package grounding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/trendcurator-backend/internal/adapter/llm"
	"github.com/heartmarshall/trendcurator-backend/internal/domain"
)

// AnswerInput holds the parameters for one grounded answer.
type AnswerInput struct {
	UserID string
	Locale domain.Locale
	// Question may be empty, in which case a priming question asks for an
	// introduction to the followed topic.
	Question string
	// Introduction is the topic introduction already spoken in this
	// session, if any.
	Introduction string
}

// Answer is a generated, recorded reply.
type Answer struct {
	Text string
	// Question is the question as recorded in history.
	Question       string
	RemainingUsage int
}

// PrimingQuestion returns the question substituted when none was asked.
func PrimingQuestion(l domain.Locale) string {
	if l.IsJapanese() {
		return "このトピックの最新ニュースは何ですか？"
	}
	return "What is the latest news on this topic?"
}

// Answer gates on quota, generates a grounded reply and appends the turn to
// history. On domain.ErrQuotaExceeded no generation is issued. On
// generation failure history is left untouched. A charge that cannot be
// recorded fails the turn with domain.ErrGenerationFailed.
func (s *Service) Answer(ctx context.Context, in AnswerInput) (*Answer, error) {
	gate, err := s.usage.Gate(ctx, in.UserID)
	if err != nil {
		return nil, fmt.Errorf("answer: %w", err)
	}

	question := domain.EnsureQuestion(in.Question, in.Locale)
	if question == "" {
		question = PrimingQuestion(in.Locale)
	}

	turns, err := s.history.Recent(ctx, in.UserID, s.cfg.HistoryTurns)
	if err != nil {
		return nil, fmt.Errorf("answer: %w", err)
	}
	articles, err := s.articles.RecentArticles(ctx, in.UserID, s.cfg.ArticleLimit)
	if err != nil {
		return nil, fmt.Errorf("answer: %w", err)
	}

	prompt := buildPrompt(promptInput{
		locale:       in.Locale,
		answerLength: s.cfg.AnswerLength,
		history:      turns,
		question:     question,
		introduction: in.Introduction,
		articles:     articles,
	})

	out, err := s.gen.Generate(ctx, llm.Request{Kind: llm.KindAnswer, Prompt: prompt})
	if err != nil {
		s.log.ErrorContext(ctx, "answer generation failed",
			slog.String("user_id", in.UserID),
			slog.String("error", err.Error()),
		)
		if !errors.Is(err, domain.ErrGenerationFailed) && ctx.Err() == nil {
			err = fmt.Errorf("%w: %w", domain.ErrGenerationFailed, err)
		}
		return nil, fmt.Errorf("answer: %w", err)
	}

	text := strings.TrimSpace(out)
	if text == "" {
		s.log.ErrorContext(ctx, "empty answer generated", slog.String("user_id", in.UserID))
		return nil, fmt.Errorf("answer: %w: empty text", domain.ErrGenerationFailed)
	}

	if err := s.history.Append(ctx, in.UserID, domain.ConversationTurn{Question: question, Answer: text}); err != nil {
		return nil, fmt.Errorf("answer: %w", err)
	}

	remaining := max(gate.RemainingUsage-1, 0)
	counter, err := s.usage.Increment(ctx, in.UserID)
	switch {
	case err == nil:
		remaining = counter.RemainingUsage
	case errors.Is(err, domain.ErrQuotaExceeded):
		// A concurrent turn spent the last unit after the gate passed.
		s.log.WarnContext(ctx, "quota spent concurrently, answer delivered uncharged",
			slog.String("user_id", in.UserID))
		remaining = 0
	default:
		s.log.ErrorContext(ctx, "charge usage failed",
			slog.String("user_id", in.UserID),
			slog.String("error", err.Error()),
		)
		if !errors.Is(err, domain.ErrGenerationFailed) {
			err = fmt.Errorf("%w: %w", domain.ErrGenerationFailed, err)
		}
		return nil, fmt.Errorf("answer: %w", err)
	}

	s.log.InfoContext(ctx, "answer generated",
		slog.String("user_id", in.UserID),
		slog.Int("history_turns", len(turns)),
		slog.Int("articles", len(articles)),
		slog.Int("answer_chars", len([]rune(text))),
		slog.Int("remaining_usage", remaining),
	)

	return &Answer{Text: text, Question: question, RemainingUsage: remaining}, nil
}
