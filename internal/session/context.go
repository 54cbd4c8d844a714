package session

import "context"

type contextKey string

const sessionIDKey = contextKey("session_id")

func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey, id)
}

// IDFromContext returns the session ID stored by WithID, or "" if there is none.
func IDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(sessionIDKey).(string); ok {
		return id
	}
	return ""
}
