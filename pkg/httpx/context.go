package httpx

import "context"

type ctxKey string

const (
	// CtxKeyUserID carries the authenticated user's ID.
	CtxKeyUserID ctxKey = "user_id"
	// CtxKeySessionID carries the validated session's ID.
	CtxKeySessionID ctxKey = "session_id"
)

// UserIDFromContext returns the authenticated user's ID, or "" when the
// request is anonymous.
func UserIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}

// SessionIDFromContext returns the validated session's ID, or "".
func SessionIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeySessionID).(string); ok {
		return v
	}
	return ""
}
