package membership

import (
	"context"
	"strings"

	"github.com/vietpass/vietpass/internal/identity"
	"github.com/vietpass/vietpass/internal/pass"
	"github.com/vietpass/vietpass/internal/session"
)

// State is the gate's decision for a dashboard view.
type State string

const (
	// StateLoading is the initial state before evaluation completes.
	StateLoading State = "loading"
	// StateAccessDenied means no valid identity+credential pair exists.
	StateAccessDenied State = "access_denied"
	// StateExpired is a distinguishable denial: a credential exists but has
	// lapsed.
	StateExpired State = "expired"
	// StateActive grants access to protected content.
	StateActive State = "active"
)

const expiryLayout = "Jan 2, 2006"

// Decision carries the gate outcome plus the display fields an Active (or
// Expired) dashboard needs. Decisions are terminal: only a fresh evaluation
// produces a new one.
type Decision struct {
	State       State
	Identity    *identity.Identity
	Credential  *pass.Credential
	MemberLabel string
	ExpiryLabel string
}

// Gate decides dashboard visibility from the session's identity and
// credential slots.
type Gate struct {
	store session.Store
	clock Clock
}

// NewGate builds a gate over the given session store. A nil clock falls back
// to the system clock.
func NewGate(store session.Store, clock Clock) *Gate {
	if clock == nil {
		clock = SystemClock()
	}
	return &Gate{store: store, clock: clock}
}

// Evaluate applies the gating rules in order: missing identity denies,
// missing credential denies, a lapsed credential reports Expired, anything
// else is Active. A credential owned by a different account counts as
// missing.
func (g *Gate) Evaluate(ctx context.Context, sid string) (Decision, error) {
	if sid == "" {
		return Decision{State: StateAccessDenied}, nil
	}

	id, err := g.store.Identity(ctx, sid)
	if err != nil {
		return Decision{State: StateLoading}, err
	}
	if id == nil {
		return Decision{State: StateAccessDenied}, nil
	}

	cred, err := g.store.Credential(ctx, sid)
	if err != nil {
		return Decision{State: StateLoading}, err
	}
	if cred == nil || !cred.BelongsTo(id.Email) {
		return Decision{State: StateAccessDenied}, nil
	}

	if cred.Expired(g.clock.Now()) {
		return Decision{
			State:       StateExpired,
			Identity:    id,
			Credential:  cred,
			MemberLabel: MaskName(id.Name, id.Email),
			ExpiryLabel: cred.ExpiresAt.Format(expiryLayout),
		}, nil
	}

	return Decision{
		State:       StateActive,
		Identity:    id,
		Credential:  cred,
		MemberLabel: MaskName(id.Name, id.Email),
		ExpiryLabel: cred.ExpiresAt.Format(expiryLayout),
	}, nil
}

// MaskName reduces a member name for display: the first word stays, every
// following word becomes an initial. Without a name the email local part is
// masked instead.
func MaskName(name, email string) string {
	words := strings.Fields(name)
	if len(words) > 0 {
		masked := words[0]
		for _, w := range words[1:] {
			masked += " " + string([]rune(w)[0]) + "."
		}
		return masked
	}

	local, _, found := strings.Cut(email, "@")
	if !found || local == "" {
		return ""
	}
	runes := []rune(local)
	return string(runes[0]) + strings.Repeat("*", len(runes)-1)
}
