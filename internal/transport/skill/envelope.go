// Package skill serves the voice platform webhook: it decodes request
// envelopes, routes them by request type and intent, and renders every
// outcome, errors included, as spoken text.
package skill

import (
	"strconv"
	"strings"
)

// Request types.
const (
	RequestLaunch       = "LaunchRequest"
	RequestIntent       = "IntentRequest"
	RequestSessionEnded = "SessionEndedRequest"
)

// Intent and slot names.
const (
	IntentSetTopic     = "SetTopicIntent"
	IntentQuestion     = "QuestionIntent"
	IntentCatchUp      = "CatchUpIntent"
	IntentTrendSummary = "GetTrendSummaryIntent"
	IntentTrendDetail  = "GetTrendDetailIntent"
	IntentHelp         = "AMAZON.HelpIntent"
	IntentCancel       = "AMAZON.CancelIntent"
	IntentStop         = "AMAZON.StopIntent"
	IntentRepeat       = "AMAZON.RepeatIntent"

	SlotTopic            = "Topic"
	SlotQuestion         = "Question"
	SlotTrendDigestIndex = "TrendDigestIndex"
)

const attrValidIndexes = "valid_indexes"

// RequestEnvelope is the body posted by the voice platform.
type RequestEnvelope struct {
	Version string  `json:"version"`
	Session Session `json:"session"`
	Context Context `json:"context"`
	Request Request `json:"request"`
}

// Session identifies the conversation and carries its attributes.
type Session struct {
	New         bool           `json:"new"`
	SessionID   string         `json:"sessionId"`
	Application Application    `json:"application"`
	Attributes  map[string]any `json:"attributes,omitempty"`
	User        User           `json:"user"`
}

// Context carries device-level information. SessionEndedRequest and
// out-of-session requests may only populate this.
type Context struct {
	System System `json:"System"`
}

// System is the platform system state.
type System struct {
	Application Application `json:"application"`
	User        User        `json:"user"`
}

// Application identifies the skill.
type Application struct {
	ApplicationID string `json:"applicationId"`
}

// User identifies the platform account.
type User struct {
	UserID string `json:"userId"`
}

// Request is the user's utterance or lifecycle event.
type Request struct {
	Type      string `json:"type"`
	RequestID string `json:"requestId"`
	Timestamp string `json:"timestamp"`
	Locale    string `json:"locale"`
	Intent    Intent `json:"intent"`
	Reason    string `json:"reason,omitempty"`
}

// Intent is the resolved intent with its slots.
type Intent struct {
	Name  string          `json:"name"`
	Slots map[string]Slot `json:"slots,omitempty"`
}

// Slot is one captured value.
type Slot struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

// UserID returns the platform user id, preferring the session.
func (e *RequestEnvelope) UserID() string {
	if e.Session.User.UserID != "" {
		return e.Session.User.UserID
	}
	return e.Context.System.User.UserID
}

// ApplicationID returns the addressed skill id, preferring the session.
func (e *RequestEnvelope) ApplicationID() string {
	if e.Session.Application.ApplicationID != "" {
		return e.Session.Application.ApplicationID
	}
	return e.Context.System.Application.ApplicationID
}

// IntentName returns the intent name, or the request type for non-intent requests.
func (e *RequestEnvelope) IntentName() string {
	if e.Request.Type == RequestIntent {
		return e.Request.Intent.Name
	}
	return e.Request.Type
}

// SlotValue returns the trimmed value of slot name, or "".
func (e *RequestEnvelope) SlotValue(name string) string {
	return strings.TrimSpace(e.Request.Intent.Slots[name].Value)
}

// ResponseEnvelope is the reply rendered back to the platform.
type ResponseEnvelope struct {
	Version           string         `json:"version"`
	SessionAttributes map[string]any `json:"sessionAttributes,omitempty"`
	Response          Response       `json:"response"`
}

// Response is the speech to render.
type Response struct {
	OutputSpeech     *OutputSpeech `json:"outputSpeech,omitempty"`
	Reprompt         *Reprompt     `json:"reprompt,omitempty"`
	ShouldEndSession *bool         `json:"shouldEndSession,omitempty"`
}

// OutputSpeech is plain-text speech.
type OutputSpeech struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Reprompt is spoken if the user stays silent.
type Reprompt struct {
	OutputSpeech OutputSpeech `json:"outputSpeech"`
}

func plain(text string) OutputSpeech {
	return OutputSpeech{Type: "PlainText", Text: text}
}

// tell speaks text and ends the session.
func tell(text string) *ResponseEnvelope {
	end := true
	s := plain(text)
	return &ResponseEnvelope{
		Version:  "1.0",
		Response: Response{OutputSpeech: &s, ShouldEndSession: &end},
	}
}

// ask speaks text and keeps the session open, repeating reprompt on silence.
func ask(text, reprompt string) *ResponseEnvelope {
	end := false
	s := plain(text)
	return &ResponseEnvelope{
		Version: "1.0",
		Response: Response{
			OutputSpeech:     &s,
			Reprompt:         &Reprompt{OutputSpeech: plain(reprompt)},
			ShouldEndSession: &end,
		},
	}
}

// empty is the reply to lifecycle events that must not speak.
func empty() *ResponseEnvelope {
	return &ResponseEnvelope{Version: "1.0"}
}

// validIndexes decodes the digest indexes kept in session attributes.
// JSON numbers arrive as float64; strings are accepted as well.
func validIndexes(attrs map[string]any) []int {
	raw, ok := attrs[attrValidIndexes].([]any)
	if !ok {
		return []int{}
	}
	out := make([]int, 0, len(raw))
	for _, v := range raw {
		switch n := v.(type) {
		case float64:
			out = append(out, int(n))
		case int:
			out = append(out, n)
		case string:
			if i, err := strconv.Atoi(n); err == nil {
				out = append(out, i)
			}
		}
	}
	return out
}

func withValidIndexes(attrs map[string]any, idx []int) map[string]any {
	out := make(map[string]any, len(attrs)+1)
	for k, v := range attrs {
		out[k] = v
	}
	vals := make([]any, len(idx))
	for i, n := range idx {
		vals[i] = n
	}
	out[attrValidIndexes] = vals
	return out
}
