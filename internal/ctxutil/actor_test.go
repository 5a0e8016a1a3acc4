package ctxutil

import (
	"context"
	"testing"
)

func TestActorRoundTrip(t *testing.T) {
	ctx := context.Background()
	if got := ActorFromContext(ctx); got != "" {
		t.Errorf("ActorFromContext(empty) = %q", got)
	}

	ctx = WithActorID(ctx, "EMP001")
	ctx = WithCorrelationID(ctx, "abc-123")
	if got := ActorFromContext(ctx); got != "EMP001" {
		t.Errorf("ActorFromContext = %q, want EMP001", got)
	}
	if got := CorrelationFromContext(ctx); got != "abc-123" {
		t.Errorf("CorrelationFromContext = %q, want abc-123", got)
	}
}
