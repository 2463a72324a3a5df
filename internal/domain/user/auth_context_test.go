package user

import (
	"context"
	"testing"
)

func TestSessions_PublishAndCurrent(t *testing.T) {
	t.Parallel()

	sessions := NewSessions()

	if _, ok := sessions.Current(context.Background()); ok {
		t.Fatalf("expected no current principal before publish")
	}

	sessions.Publish(Principal{UserID: "user-1", Role: RolePlayer})

	got, ok := sessions.Current(context.Background())
	if !ok {
		t.Fatalf("expected current principal after publish")
	}
	if got.UserID != "user-1" || got.Role != RolePlayer {
		t.Fatalf("unexpected principal: %+v", got)
	}

	sessions.Clear()
	if _, ok := sessions.Current(context.Background()); ok {
		t.Fatalf("expected no current principal after clear")
	}
}

func TestSessions_SubscribeAndUnsubscribe(t *testing.T) {
	t.Parallel()

	sessions := NewSessions()

	var seen []string
	unsubscribe := sessions.Subscribe(func(p Principal) {
		seen = append(seen, p.UserID)
	})

	sessions.Publish(Principal{UserID: "user-1"})
	sessions.Publish(Principal{UserID: "user-2"})

	unsubscribe()
	unsubscribe() // idempotent

	sessions.Publish(Principal{UserID: "user-3"})

	if len(seen) != 2 || seen[0] != "user-1" || seen[1] != "user-2" {
		t.Fatalf("unexpected notifications: %v", seen)
	}
}
