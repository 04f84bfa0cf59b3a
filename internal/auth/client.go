package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/vietpass/vietpass/internal/identity"
	"github.com/vietpass/vietpass/internal/session"
)

// RetryPolicy paces login retries while the provider is still warming up.
// MaxAttempts of zero retries until the context is cancelled.
type RetryPolicy struct {
	Interval    time.Duration
	MaxAttempts int
}

type attempt struct {
	done chan struct{}
	id   identity.Identity
	err  error
}

// Client drives the external login handshake and owns the session's identity
// slot. At most one handshake is in flight per session: a concurrent Login
// call for the same session awaits the pending result instead of starting a
// duplicate exchange with the provider.
type Client struct {
	provider Provider
	store    session.Store
	policy   RetryPolicy

	mu      sync.Mutex
	pending map[string]*attempt
}

// NewClient builds an auth client around the given provider and session store.
func NewClient(provider Provider, store session.Store, policy RetryPolicy) *Client {
	if policy.Interval <= 0 {
		policy.Interval = time.Second
	}
	return &Client{
		provider: provider,
		store:    store,
		policy:   policy,
		pending:  make(map[string]*attempt),
	}
}

// Login runs the external handshake and persists the resulting Identity.
// While the provider reports unavailable the call retries at the policy
// interval until it succeeds, exhausts MaxAttempts, or ctx is cancelled.
func (c *Client) Login(ctx context.Context, sid string, input LoginInput) (identity.Identity, error) {
	c.mu.Lock()
	if a, ok := c.pending[sid]; ok {
		c.mu.Unlock()
		select {
		case <-a.done:
			return a.id, a.err
		case <-ctx.Done():
			return identity.Identity{}, ctx.Err()
		}
	}
	a := &attempt{done: make(chan struct{})}
	c.pending[sid] = a
	c.mu.Unlock()

	a.id, a.err = c.login(ctx, sid, input)
	close(a.done)

	c.mu.Lock()
	delete(c.pending, sid)
	c.mu.Unlock()

	return a.id, a.err
}

func (c *Client) login(ctx context.Context, sid string, input LoginInput) (identity.Identity, error) {
	attempts := 0
	for {
		res, err := c.provider.Login(ctx, input)
		if err == nil {
			if err := c.store.SaveIdentity(ctx, sid, res.Identity); err != nil {
				return identity.Identity{}, err
			}
			return res.Identity, nil
		}
		if !errors.Is(err, ErrProviderUnavailable) {
			return identity.Identity{}, err
		}

		attempts++
		if c.policy.MaxAttempts > 0 && attempts >= c.policy.MaxAttempts {
			return identity.Identity{}, err
		}
		select {
		case <-ctx.Done():
			return identity.Identity{}, ctx.Err()
		case <-time.After(c.policy.Interval):
		}
	}
}

// Logout clears identity and credential for the session. Safe to call when
// nothing is stored.
func (c *Client) Logout(ctx context.Context, sid string) error {
	return c.store.Clear(ctx, sid)
}
