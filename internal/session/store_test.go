package session

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/vietpass/vietpass/internal/identity"
	"github.com/vietpass/vietpass/internal/pass"
)

func runStoreTests(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()
	const sid = "sess-1"

	// Empty slots read as nil, not errors.
	id, err := store.Identity(ctx, sid)
	if err != nil || id != nil {
		t.Fatalf("empty identity slot: got %v, %v", id, err)
	}
	cred, err := store.Credential(ctx, sid)
	if err != nil || cred != nil {
		t.Fatalf("empty credential slot: got %v, %v", cred, err)
	}

	if err := store.SaveIdentity(ctx, sid, identity.Identity{Email: "nomad@example.com", Name: "Alex Chen"}); err != nil {
		t.Fatalf("save identity: %v", err)
	}
	id, err = store.Identity(ctx, sid)
	if err != nil {
		t.Fatalf("load identity: %v", err)
	}
	if id == nil || id.Email != "nomad@example.com" {
		t.Fatalf("unexpected identity: %+v", id)
	}

	if err := store.SaveCredential(ctx, sid, pass.Credential{
		TokenID:    42,
		OwnerEmail: "nomad@example.com",
		ExpiresAt:  time.Now().Add(time.Hour).UTC(),
	}); err != nil {
		t.Fatalf("save credential: %v", err)
	}
	cred, err = store.Credential(ctx, sid)
	if err != nil {
		t.Fatalf("load credential: %v", err)
	}
	if cred == nil || cred.TokenID != 42 {
		t.Fatalf("unexpected credential: %+v", cred)
	}

	// Sessions are isolated.
	if other, _ := store.Identity(ctx, "sess-2"); other != nil {
		t.Fatalf("identity leaked across sessions: %+v", other)
	}

	// Clear drops both slots together.
	if err := store.Clear(ctx, sid); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if id, _ := store.Identity(ctx, sid); id != nil {
		t.Fatal("identity survived clear")
	}
	if cred, _ := store.Credential(ctx, sid); cred != nil {
		t.Fatal("credential survived clear")
	}

	// Clear is idempotent.
	if err := store.Clear(ctx, sid); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	runStoreTests(t, NewMemoryStore())
}

func TestRedisStore(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	runStoreTests(t, NewRedisStore(client, time.Hour))
}
