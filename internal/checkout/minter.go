package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vietpass/vietpass/internal/identity"
	"github.com/vietpass/vietpass/internal/pass"
)

// Minter represents the external credential-issuance collaborator. It is
// only ever called with a confirmed payment identifier.
type Minter interface {
	MintCredential(ctx context.Context, paymentIntentID string, id identity.Identity) (pass.Credential, error)
}

// StaticMinter simulates the minting collaborator with synthetic token ids.
type StaticMinter struct {
	ContractAddress string
	Network         string
	Validity        time.Duration
}

// MintCredential issues a credential valid for the configured period.
func (m StaticMinter) MintCredential(_ context.Context, paymentIntentID string, id identity.Identity) (pass.Credential, error) {
	if paymentIntentID == "" {
		return pass.Credential{}, fmt.Errorf("payment confirmation id is required")
	}
	now := time.Now().UTC()
	return pass.Credential{
		TokenID:         int64(uuid.New().ID()),
		ContractAddress: m.ContractAddress,
		Network:         m.Network,
		MintedAt:        now,
		ExpiresAt:       now.Add(m.Validity),
		OwnerEmail:      id.Email,
	}, nil
}
