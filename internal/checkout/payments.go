package checkout

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// PaymentProvider represents a connector to the external card processor.
type PaymentProvider interface {
	CreateIntent(ctx context.Context, input IntentInput) (Intent, error)
	ConfirmCardPayment(ctx context.Context, clientSecret string, card CardInput) (Confirmation, error)
}

// IntentInput describes the payment to set up.
type IntentInput struct {
	Amount   int64
	Currency string
	Email    string
}

// Intent is the provider's handle for an initiated payment.
type Intent struct {
	ID           string
	ClientSecret string
}

// CardInput holds locally collected payment-method details.
type CardInput struct {
	Number string
	Expiry string
	CVC    string
}

// Confirmation captures a successful capture.
type Confirmation struct {
	IntentID string
	Status   string
}

// ConfirmationSucceeded is the status a completed capture reports.
const ConfirmationSucceeded = "succeeded"

// declineTestCard is the processor's documented always-decline test number.
const declineTestCard = "4000000000000002"

// StaticPaymentProvider simulates the external processor: it approves every
// well-formed card except the documented decline test number, and only
// confirms intents it previously created.
type StaticPaymentProvider struct {
	mu      sync.Mutex
	intents map[string]string // clientSecret -> intent id
}

// NewStaticPaymentProvider builds a simulated payment provider.
func NewStaticPaymentProvider() *StaticPaymentProvider {
	return &StaticPaymentProvider{intents: make(map[string]string)}
}

// CreateIntent registers a payment and hands back a synthetic client secret.
func (p *StaticPaymentProvider) CreateIntent(_ context.Context, input IntentInput) (Intent, error) {
	if input.Amount <= 0 {
		return Intent{}, fmt.Errorf("amount must be positive")
	}
	if input.Currency == "" {
		return Intent{}, fmt.Errorf("currency is required")
	}
	id := "pi_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	secret := id + "_secret_" + uuid.NewString()

	p.mu.Lock()
	p.intents[secret] = id
	p.mu.Unlock()

	return Intent{ID: id, ClientSecret: secret}, nil
}

// ConfirmCardPayment captures a previously created intent.
func (p *StaticPaymentProvider) ConfirmCardPayment(_ context.Context, clientSecret string, card CardInput) (Confirmation, error) {
	p.mu.Lock()
	id, ok := p.intents[clientSecret]
	p.mu.Unlock()
	if !ok {
		return Confirmation{}, fmt.Errorf("unknown client secret")
	}

	if err := validateCardNumber(card.Number); err != nil {
		return Confirmation{}, &DeclinedError{Reason: "invalid_number"}
	}
	if strings.ReplaceAll(card.Number, " ", "") == declineTestCard {
		return Confirmation{}, &DeclinedError{Reason: "card_declined"}
	}

	return Confirmation{IntentID: id, Status: ConfirmationSucceeded}, nil
}

func validateCardNumber(card string) error {
	digits := strings.ReplaceAll(card, " ", "")
	if len(digits) < 12 || len(digits) > 19 {
		return fmt.Errorf("card number must be between 12 and 19 digits")
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return fmt.Errorf("card number must be numeric")
		}
	}
	return nil
}
