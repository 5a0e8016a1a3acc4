package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/example/gridboard/internal/ports/primary"
)

// storeResult converts the store's LastError into a command error.
func storeResult(store primary.Store, action string) error {
	if msg := store.LastError(); msg != "" {
		return fmt.Errorf("failed to %s: %s", action, msg)
	}
	return nil
}

// loadAll runs each fetch in order and stops at the first failure.
func loadAll(ctx context.Context, store primary.Store, action string, fetches ...func(context.Context)) error {
	for _, fetch := range fetches {
		fetch(ctx)
		if err := storeResult(store, action); err != nil {
			return err
		}
	}
	return nil
}

// parseWhen accepts an RFC 3339 timestamp, a "2006-01-02 15:04" local time,
// or a duration relative to now ("90m", "-2h"). Empty input yields now.
func parseWhen(raw string, now time.Time) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return now, nil
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return now.Add(d), nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04", raw, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid time %q. Use RFC 3339, '2006-01-02 15:04', or a duration like 90m", raw)
}

// splitIDs splits a comma-separated ID list, dropping blanks.
func splitIDs(raw string) []string {
	var ids []string
	for _, part := range strings.Split(raw, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
