package membership

import (
	"context"
	"testing"
	"time"

	"github.com/vietpass/vietpass/internal/identity"
	"github.com/vietpass/vietpass/internal/pass"
	"github.com/vietpass/vietpass/internal/session"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newGateFixture(t *testing.T) (*Gate, session.Store) {
	t.Helper()
	store := session.NewMemoryStore()
	return NewGate(store, fixedClock{t: testNow}), store
}

func seedSession(t *testing.T, store session.Store, sid string, expiresAt time.Time) {
	t.Helper()
	ctx := context.Background()
	if err := store.SaveIdentity(ctx, sid, identity.Identity{Email: "nomad@example.com", Name: "Alex Chen"}); err != nil {
		t.Fatalf("save identity: %v", err)
	}
	if err := store.SaveCredential(ctx, sid, pass.Credential{
		TokenID:    42,
		OwnerEmail: "nomad@example.com",
		ExpiresAt:  expiresAt,
	}); err != nil {
		t.Fatalf("save credential: %v", err)
	}
}

func TestGateDeniesWithoutIdentity(t *testing.T) {
	gate, _ := newGateFixture(t)
	dec, err := gate.Evaluate(context.Background(), "sess-empty")
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if dec.State != StateAccessDenied {
		t.Fatalf("expected access_denied, got %s", dec.State)
	}
}

func TestGateDeniesWithoutCredential(t *testing.T) {
	gate, store := newGateFixture(t)
	if err := store.SaveIdentity(context.Background(), "sess-1", identity.Identity{Email: "nomad@example.com"}); err != nil {
		t.Fatalf("save identity: %v", err)
	}
	dec, err := gate.Evaluate(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if dec.State != StateAccessDenied {
		t.Fatalf("expected access_denied, got %s", dec.State)
	}
}

func TestGateDeniesForeignCredential(t *testing.T) {
	gate, store := newGateFixture(t)
	ctx := context.Background()
	if err := store.SaveIdentity(ctx, "sess-1", identity.Identity{Email: "nomad@example.com"}); err != nil {
		t.Fatalf("save identity: %v", err)
	}
	if err := store.SaveCredential(ctx, "sess-1", pass.Credential{
		OwnerEmail: "someone-else@example.com",
		ExpiresAt:  testNow.Add(time.Hour),
	}); err != nil {
		t.Fatalf("save credential: %v", err)
	}
	dec, _ := gate.Evaluate(ctx, "sess-1")
	if dec.State != StateAccessDenied {
		t.Fatalf("credential of another account must deny, got %s", dec.State)
	}
}

func TestGateExpiredIsItsOwnState(t *testing.T) {
	gate, store := newGateFixture(t)
	seedSession(t, store, "sess-1", testNow.Add(-time.Second))

	dec, err := gate.Evaluate(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if dec.State != StateExpired {
		t.Fatalf("expected expired, got %s", dec.State)
	}
	if dec.Identity == nil || dec.Credential == nil {
		t.Fatal("expired decision must still carry identity and credential for display")
	}
}

func TestGateExpiryBoundaryIsInclusive(t *testing.T) {
	gate, store := newGateFixture(t)
	seedSession(t, store, "sess-1", testNow)

	dec, _ := gate.Evaluate(context.Background(), "sess-1")
	if dec.State != StateExpired {
		t.Fatalf("credential expiring exactly now must read expired, got %s", dec.State)
	}
}

func TestGateActive(t *testing.T) {
	gate, store := newGateFixture(t)
	seedSession(t, store, "sess-1", testNow.Add(24*time.Hour))

	dec, err := gate.Evaluate(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if dec.State != StateActive {
		t.Fatalf("expected active, got %s", dec.State)
	}
	if dec.MemberLabel != "Alex C." {
		t.Fatalf("unexpected member label: %q", dec.MemberLabel)
	}
	if dec.ExpiryLabel != "Jun 2, 2025" {
		t.Fatalf("unexpected expiry label: %q", dec.ExpiryLabel)
	}
	if dec.Credential.TokenID != 42 {
		t.Fatalf("decision must carry the credential forward")
	}
}

func TestGateDeniesAfterLogout(t *testing.T) {
	gate, store := newGateFixture(t)
	ctx := context.Background()
	seedSession(t, store, "sess-1", testNow.Add(24*time.Hour))

	if dec, _ := gate.Evaluate(ctx, "sess-1"); dec.State != StateActive {
		t.Fatalf("precondition: expected active, got %s", dec.State)
	}

	if err := store.Clear(ctx, "sess-1"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	dec, _ := gate.Evaluate(ctx, "sess-1")
	if dec.State != StateAccessDenied {
		t.Fatalf("logout must always yield access_denied, got %s", dec.State)
	}
}

func TestMaskName(t *testing.T) {
	cases := []struct {
		name, email, want string
	}{
		{"Alex Chen", "", "Alex C."},
		{"Nguyen Van An", "", "Nguyen V. A."},
		{"Cher", "", "Cher"},
		{"", "alex@example.com", "a***"},
		{"", "@example.com", ""},
		{"", "", ""},
	}
	for _, tc := range cases {
		if got := MaskName(tc.name, tc.email); got != tc.want {
			t.Errorf("MaskName(%q, %q) = %q, want %q", tc.name, tc.email, got, tc.want)
		}
	}
}
