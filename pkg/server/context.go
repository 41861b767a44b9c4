package server

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	// contextKeyRequestID is the context key for request ID
	contextKeyRequestID contextKey = "requestID"
)

// RequestIDKey exposes the request ID context key for handlers outside this
// package that want to correlate logs.
func RequestIDKey() any {
	return contextKeyRequestID
}
