package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vietpass/vietpass/internal/identity"
)

var (
	// ErrProviderUnavailable means the external SDK has not finished loading.
	// Login retries this automatically.
	ErrProviderUnavailable = errors.New("identity provider unavailable")

	// ErrLoginDenied means the external flow completed without a user.
	ErrLoginDenied = errors.New("login denied")
)

// Provider represents a connector to the external identity+wallet service.
// A successful login yields a complete Identity, wallet included.
type Provider interface {
	Login(ctx context.Context, input LoginInput) (LoginResult, error)
}

// LoginInput captures the social-login request forwarded to the provider.
type LoginInput struct {
	Provider string
	Scopes   []string
	Email    string
	Name     string
}

// LoginResult is the provider's answer on success.
type LoginResult struct {
	Identity identity.Identity
}

// StaticProvider simulates the external identity service. It reports
// unavailable until its warm-up elapses, mirroring an SDK that loads
// asynchronously, then approves any login that carries an email.
type StaticProvider struct {
	readyAt time.Time
}

// NewStaticProvider builds a simulated provider that becomes ready after the
// given warm-up period.
func NewStaticProvider(warmup time.Duration) *StaticProvider {
	return &StaticProvider{readyAt: time.Now().Add(warmup)}
}

// Login approves the request with a synthetic wallet address.
func (p *StaticProvider) Login(_ context.Context, input LoginInput) (LoginResult, error) {
	if time.Now().Before(p.readyAt) {
		return LoginResult{}, ErrProviderUnavailable
	}
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if email == "" || !strings.Contains(email, "@") {
		return LoginResult{}, ErrLoginDenied
	}
	return LoginResult{Identity: identity.Identity{
		Email:         email,
		Name:          strings.TrimSpace(input.Name),
		WalletAddress: "0x" + strings.ReplaceAll(uuid.NewString(), "-", ""),
	}}, nil
}
