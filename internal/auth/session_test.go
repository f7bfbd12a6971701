package auth

import (
	"context"
	"testing"
	"time"
)

// The registry without a Redis client still drives the observer lifecycle;
// record persistence is covered by the nil-client accept-all path.

func TestSessionRegistryNotifiesSubscribers(t *testing.T) {
	reg := NewSessionRegistry(nil, time.Hour)

	var changes []SessionChange
	unsubscribe := reg.Subscribe(func(change SessionChange) {
		changes = append(changes, change)
	})

	sessionID, err := reg.Start(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if sessionID == "" {
		t.Fatal("empty session id")
	}
	if err := reg.End(context.Background(), sessionID, "u-1"); err != nil {
		t.Fatalf("End: %v", err)
	}

	if len(changes) != 2 {
		t.Fatalf("changes = %d, want 2", len(changes))
	}
	if !changes[0].Started || changes[0].UserID != "u-1" {
		t.Errorf("first change = %+v, want started for u-1", changes[0])
	}
	if changes[1].Started || changes[1].SessionID != sessionID {
		t.Errorf("second change = %+v, want end of %q", changes[1], sessionID)
	}

	unsubscribe()
	if _, err := reg.Start(context.Background(), "u-2"); err != nil {
		t.Fatalf("Start after unsubscribe: %v", err)
	}
	if len(changes) != 2 {
		t.Errorf("listener invoked after unsubscribe, changes = %d", len(changes))
	}
}

func TestSessionRegistryActiveWithoutClient(t *testing.T) {
	reg := NewSessionRegistry(nil, time.Hour)
	active, err := reg.Active(context.Background(), "any")
	if err != nil {
		t.Fatalf("Active: %v", err)
	}
	if !active {
		t.Error("nil-client registry should accept unexpired tokens")
	}
}
