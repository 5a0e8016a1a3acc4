// Package ctxutil provides context utilities that can be safely imported anywhere.
// This package has no internal dependencies to avoid import cycles.
package ctxutil

import "context"

// ActorKey is the context key for actor ID.
// The actor is the employee ID of the logged-in user issuing a request.
type ActorKey struct{}

// CorrelationKey is the context key for the request correlation ID.
type CorrelationKey struct{}

// WithActorID returns a context with the actor ID embedded.
func WithActorID(ctx context.Context, actorID string) context.Context {
	return context.WithValue(ctx, ActorKey{}, actorID)
}

// ActorFromContext returns the actor ID from context, or empty string if not set.
func ActorFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(ActorKey{}).(string); ok {
		return v
	}
	return ""
}

// WithCorrelationID returns a context carrying a correlation ID for log joins
// across the CLI and the data service.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CorrelationKey{}, id)
}

// CorrelationFromContext returns the correlation ID from context, or empty string if not set.
func CorrelationFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CorrelationKey{}).(string); ok {
		return v
	}
	return ""
}
