package graphql

import (
	"context"
	"net/http"
)

// Context keys for resolver injection (avoids circular imports).
type contextKey string

const CtxKeyRequestID contextKey = "requestID"

// HeaderRequestID is read from the request, or set by echo's RequestID middleware.
const HeaderRequestID = "X-Request-Id"

// RequestIDFromContext returns the request ID for the current request.
func RequestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyRequestID).(string); ok {
		return v
	}
	return ""
}

// WithRequestID attaches id to context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CtxKeyRequestID, id)
}

// GetRequestID extracts the request ID from the request or response headers.
func GetRequestID(r *http.Request, w http.ResponseWriter) string {
	if id := r.Header.Get(HeaderRequestID); id != "" {
		return id
	}
	return w.Header().Get(HeaderRequestID)
}
