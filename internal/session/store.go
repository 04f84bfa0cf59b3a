package session

import (
	"context"

	"github.com/vietpass/vietpass/internal/identity"
	"github.com/vietpass/vietpass/internal/pass"
)

// Store holds per-session state: one Identity slot and one Credential slot.
// A session has at most one active credential at a time; saving overwrites.
//
// Absence is not an error: lookups return nil for empty slots. Clear removes
// both slots so no reader can observe an identity without its credential
// having been dropped too.
type Store interface {
	SaveIdentity(ctx context.Context, sid string, id identity.Identity) error
	Identity(ctx context.Context, sid string) (*identity.Identity, error)
	SaveCredential(ctx context.Context, sid string, cred pass.Credential) error
	Credential(ctx context.Context, sid string) (*pass.Credential, error)
	Clear(ctx context.Context, sid string) error
}
