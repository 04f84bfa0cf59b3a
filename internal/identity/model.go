package identity

// Identity is the profile record obtained from the external login provider.
// It is immutable once created; logout discards it rather than mutating it.
type Identity struct {
	Email         string `json:"email"`
	Name          string `json:"name,omitempty"`
	WalletAddress string `json:"wallet_address,omitempty"`
}
