package checkout

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAuthenticated means checkout was reached without a logged-in
	// identity. UI guards should make this unreachable.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrPaymentSetupFailed covers transport or collaborator failures before
	// any money moved. Fully retryable.
	ErrPaymentSetupFailed = errors.New("payment setup failed")

	// ErrPaymentDeclined means the collaborator rejected the card. The user
	// may resubmit with corrected details; nothing retries automatically.
	ErrPaymentDeclined = errors.New("payment declined")

	// ErrIssuanceFailed means the minting collaborator reported failure.
	ErrIssuanceFailed = errors.New("credential issuance failed")
)

// DeclinedError carries the collaborator's decline reason.
type DeclinedError struct {
	Reason string
}

func (e *DeclinedError) Error() string {
	return fmt.Sprintf("payment declined: %s", e.Reason)
}

func (e *DeclinedError) Unwrap() error { return ErrPaymentDeclined }

// CapturedNotIssuedError is the distinguished state where payment capture
// succeeded but the credential was never minted. It needs manual support
// recovery and must never be silently retried or folded into a generic
// failure.
type CapturedNotIssuedError struct {
	PaymentIntentID string
	Err             error
}

func (e *CapturedNotIssuedError) Error() string {
	return fmt.Sprintf("payment %s captured but credential not issued: %v", e.PaymentIntentID, e.Err)
}

func (e *CapturedNotIssuedError) Unwrap() error { return ErrIssuanceFailed }
