package pass

import "time"

// Credential is the membership token record proving paid access. It is
// created once by the checkout flow and read-only afterwards.
type Credential struct {
	TokenID         int64     `json:"token_id"`
	ContractAddress string    `json:"contract_address"`
	Network         string    `json:"network"`
	MintedAt        time.Time `json:"minted_at"`
	ExpiresAt       time.Time `json:"expires_at"`
	OwnerEmail      string    `json:"owner_email"`
}

// Expired reports whether the credential has lapsed at the given instant.
// Expiry is inclusive: a credential expiring exactly now is expired.
func (c Credential) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

// BelongsTo reports whether the credential was issued to the given account.
// A credential whose owner does not match the authenticated identity is
// never considered valid.
func (c Credential) BelongsTo(email string) bool {
	return email != "" && c.OwnerEmail == email
}
