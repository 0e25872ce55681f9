package skill

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/google/uuid"

	"github.com/heartmarshall/trendcurator-backend/internal/adapter/scratch"
	"github.com/heartmarshall/trendcurator-backend/internal/domain"
	"github.com/heartmarshall/trendcurator-backend/internal/service/grounding"
	"github.com/heartmarshall/trendcurator-backend/internal/service/topic"
	"github.com/heartmarshall/trendcurator-backend/internal/service/trend"
	"github.com/heartmarshall/trendcurator-backend/pkg/ctxutil"
)

type topicFollower interface {
	Follow(ctx context.Context, in topic.FollowInput) (*topic.FollowResult, error)
	GetTopic(ctx context.Context, userID string) (*domain.Topic, error)
}

type answerer interface {
	Answer(ctx context.Context, in grounding.AnswerInput) (*grounding.Answer, error)
}

type trendReader interface {
	Summary(ctx context.Context, userID string) (*trend.Summary, error)
	Detail(ctx context.Context, userID string, index int, valid []int) (*trend.Detail, error)
}

type newsReader interface {
	Context(ctx context.Context, userID string) (*domain.NewsContext, error)
}

type accessToucher interface {
	Touch(ctx context.Context, userID string) error
}

type intentRecorder interface {
	Intent(name string)
}

// Handler is the voice platform webhook.
type Handler struct {
	topics  topicFollower
	answers answerer
	trends  trendReader
	news    newsReader
	access  accessToucher
	scratch scratch.Store
	metrics intentRecorder
	appID   string
	log     *slog.Logger
}

// NewHandler creates the webhook handler. An empty applicationID accepts
// envelopes addressed to any skill.
func NewHandler(
	log *slog.Logger,
	applicationID string,
	topics topicFollower,
	answers answerer,
	trends trendReader,
	news newsReader,
	access accessToucher,
	store scratch.Store,
	metrics intentRecorder,
) *Handler {
	return &Handler{
		topics:  topics,
		answers: answers,
		trends:  trends,
		news:    news,
		access:  access,
		scratch: store,
		metrics: metrics,
		appID:   applicationID,
		log:     log.With("handler", "skill"),
	}
}

// turn is one decoded request with its resolved identity and locale.
type turn struct {
	env       *RequestEnvelope
	userID    string
	sessionID string
	locale    domain.Locale
	msg       messages
}

// ServeHTTP decodes the envelope, dispatches it and always answers 200 with
// a speech envelope once the envelope is accepted.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var env RequestEnvelope
	if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
		http.Error(w, "invalid request envelope", http.StatusBadRequest)
		return
	}
	if h.appID != "" && env.ApplicationID() != h.appID {
		h.log.WarnContext(r.Context(), "envelope for another skill",
			slog.String("application_id", env.ApplicationID()))
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}
	userID := env.UserID()
	if userID == "" {
		http.Error(w, "missing user", http.StatusBadRequest)
		return
	}

	ctx := ctxutil.WithUserID(r.Context(), userID)
	if tags := ctxutil.TagsFromCtx(ctx); tags != nil {
		tags.UserID = userID
		tags.Intent = env.IntentName()
	}

	loc, err := domain.ParseLocale(env.Request.Locale)
	if err != nil {
		loc = domain.DefaultLocale
	}
	sessionID := env.Session.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	t := &turn{env: &env, userID: userID, sessionID: sessionID, locale: loc, msg: messagesFor(loc)}
	writeJSON(w, h.handle(ctx, t))
}

func (h *Handler) handle(ctx context.Context, t *turn) (resp *ResponseEnvelope) {
	defer func() {
		if rec := recover(); rec != nil {
			h.log.ErrorContext(ctx, "panic in skill handler",
				slog.Any("error", rec),
				slog.String("stack", string(debug.Stack())),
				slog.String("user_id", t.userID),
			)
			resp = ask(t.msg.apology, t.msg.apology)
		}
	}()

	h.metrics.Intent(t.env.IntentName())

	resp = h.dispatch(ctx, t)
	if resp.SessionAttributes == nil && len(t.env.Session.Attributes) > 0 && !endsSession(resp) {
		resp.SessionAttributes = t.env.Session.Attributes
	}
	return resp
}

func (h *Handler) dispatch(ctx context.Context, t *turn) *ResponseEnvelope {
	switch t.env.Request.Type {
	case RequestLaunch:
		h.touch(ctx, t)
		return h.launch(ctx, t)
	case RequestSessionEnded:
		return h.sessionEnded(ctx, t)
	case RequestIntent:
	default:
		return empty()
	}

	switch t.env.Request.Intent.Name {
	case IntentSetTopic:
		h.touch(ctx, t)
		return h.setTopic(ctx, t)
	case IntentQuestion:
		return h.question(ctx, t)
	case IntentCatchUp:
		h.touch(ctx, t)
		return h.catchUp(ctx, t)
	case IntentTrendSummary:
		h.touch(ctx, t)
		return h.trendSummary(ctx, t)
	case IntentTrendDetail:
		return h.trendDetail(ctx, t)
	case IntentHelp:
		return ask(t.msg.help, t.msg.help)
	case IntentCancel, IntentStop:
		return tell(t.msg.goodbye)
	case IntentRepeat:
		return h.repeat(ctx, t)
	default:
		return tell(fmt.Sprintf(t.msg.reflector, t.env.Request.Intent.Name))
	}
}

func (h *Handler) touch(ctx context.Context, t *turn) {
	if err := h.access.Touch(ctx, t.userID); err != nil {
		h.log.ErrorContext(ctx, "record access failed",
			slog.String("user_id", t.userID),
			slog.String("error", err.Error()),
		)
	}
}

// speakError maps a failure to spoken text. Only unexpected failures are
// logged here; services already log their own refusals.
func (h *Handler) speakError(ctx context.Context, t *turn, err error) *ResponseEnvelope {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrValidation):
		return ask(t.msg.onboarding, t.msg.onboarding)
	case errors.Is(err, domain.ErrQuotaExceeded):
		return tell(t.msg.limit)
	default:
		h.log.ErrorContext(ctx, "skill request failed",
			slog.String("user_id", t.userID),
			slog.String("intent", t.env.IntentName()),
			slog.String("error", err.Error()),
		)
		return ask(t.msg.apology, t.msg.apology)
	}
}

func endsSession(r *ResponseEnvelope) bool {
	return r.Response.ShouldEndSession != nil && *r.Response.ShouldEndSession
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json;charset=UTF-8")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
