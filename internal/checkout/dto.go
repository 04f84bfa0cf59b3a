package checkout

import "time"

// PurchaseRequest captures user-provided card details for the pass purchase.
type PurchaseRequest struct {
	CardNumber string `json:"card_number"`
	Expiry     string `json:"expiry"`
	CVC        string `json:"cvc"`
}

// PurchaseResponse represents the API response for a completed purchase.
type PurchaseResponse struct {
	Status          string    `json:"status"`
	TokenID         int64     `json:"token_id"`
	ContractAddress string    `json:"contract_address"`
	Network         string    `json:"network"`
	MintedAt        time.Time `json:"minted_at"`
	ExpiresAt       time.Time `json:"expires_at"`
	PaymentIntentID string    `json:"payment_intent_id"`
}
