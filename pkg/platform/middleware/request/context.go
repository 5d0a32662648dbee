package request

import "context"

type contextKey string

const (
	requestIDKey   contextKey = "request_id"
	clientAgentKey contextKey = "client_agent"
)

// WithRequestID stores the request ID in ctx.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestID returns the request ID stored by the RequestID middleware, or "".
func GetRequestID(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// WithClientAgent stores the parsed client name (e.g. "Go-http-client") in ctx.
func WithClientAgent(ctx context.Context, agent string) context.Context {
	return context.WithValue(ctx, clientAgentKey, agent)
}

// GetClientAgent returns the client name stored by the ClientAgent middleware.
func GetClientAgent(ctx context.Context) string {
	if v, ok := ctx.Value(clientAgentKey).(string); ok {
		return v
	}
	return ""
}
