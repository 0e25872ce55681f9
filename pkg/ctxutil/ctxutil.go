package ctxutil

import "context"

type ctxKey string

const (
	userIDKey    ctxKey = "user_id"
	requestIDKey ctxKey = "request_id"
	tagsKey      ctxKey = "tags"
)

// WithUserID stores the platform user ID in the context.
func WithUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the platform user ID from the context.
// Returns "" and false if the value is missing, empty, or wrong type.
func UserIDFromCtx(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// Tags collects identifiers discovered while a request is handled so that
// outer middleware can log them once the handler returns.
type Tags struct {
	UserID string
	Intent string
}

// WithTags attaches an empty Tags to the context and returns it.
func WithTags(ctx context.Context) (context.Context, *Tags) {
	t := &Tags{}
	return context.WithValue(ctx, tagsKey, t), t
}

// TagsFromCtx returns the request's Tags, or nil if none were attached.
func TagsFromCtx(ctx context.Context) *Tags {
	t, _ := ctx.Value(tagsKey).(*Tags)
	return t
}
