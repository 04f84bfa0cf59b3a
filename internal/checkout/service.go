package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/vietpass/vietpass/internal/config"
	"github.com/vietpass/vietpass/internal/notification"
	"github.com/vietpass/vietpass/internal/pass"
	"github.com/vietpass/vietpass/internal/session"
)

// Service orchestrates the pass purchase: payment setup, capture, credential
// issuance, persistence. The steps run strictly in that order and the minter
// is never called before capture reports success.
type Service struct {
	cfg      config.Config
	store    session.Store
	payments PaymentProvider
	minter   Minter
	records  pass.Repository
	notifier notification.Notifier
}

// NewService constructs a checkout service.
func NewService(cfg config.Config, store session.Store, payments PaymentProvider, minter Minter, records pass.Repository, notifier notification.Notifier) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("session store is required")
	}
	if payments == nil {
		return nil, fmt.Errorf("payment provider is required")
	}
	if minter == nil {
		return nil, fmt.Errorf("minter is required")
	}
	if records == nil {
		return nil, fmt.Errorf("issuance record repository is required")
	}
	return &Service{cfg: cfg, store: store, payments: payments, minter: minter, records: records, notifier: notifier}, nil
}

// Result describes a completed purchase.
type Result struct {
	Credential      pass.Credential
	PaymentIntentID string
}

// Purchase runs the checkout sequence for the given session.
func (s *Service) Purchase(ctx context.Context, sid string, card CardInput) (Result, error) {
	id, err := s.store.Identity(ctx, sid)
	if err != nil {
		return Result{}, err
	}
	if id == nil {
		return Result{}, ErrNotAuthenticated
	}

	intent, err := s.payments.CreateIntent(ctx, IntentInput{
		Amount:   s.cfg.PassPrice,
		Currency: s.cfg.PassCurrency,
		Email:    id.Email,
	})
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s", ErrPaymentSetupFailed, err)
	}

	conf, err := s.payments.ConfirmCardPayment(ctx, intent.ClientSecret, card)
	if err != nil {
		if errors.Is(err, ErrPaymentDeclined) {
			return Result{}, err
		}
		return Result{}, fmt.Errorf("%w: %s", ErrPaymentSetupFailed, err)
	}
	if conf.Status != ConfirmationSucceeded {
		return Result{}, &DeclinedError{Reason: conf.Status}
	}

	cred, err := s.minter.MintCredential(ctx, conf.IntentID, *id)
	if err != nil {
		// Money moved, credential did not. Record and escalate; nothing
		// here retries on its own.
		rec := pass.NewRecord(id.Email, conf.IntentID, pass.StatusCapturedUnissued, pass.Credential{OwnerEmail: id.Email})
		_ = s.records.Create(ctx, rec)
		if s.notifier != nil {
			_ = s.notifier.Send(ctx, notification.Message{
				Kind:        notification.KindIssuanceFailure,
				Destination: notification.SupportDestination,
				Body:        fmt.Sprintf("payment %s captured for %s but issuance failed: %v", conf.IntentID, id.Email, err),
			})
		}
		return Result{}, &CapturedNotIssuedError{PaymentIntentID: conf.IntentID, Err: err}
	}

	if err := s.store.SaveCredential(ctx, sid, cred); err != nil {
		return Result{}, err
	}
	if err := s.records.Create(ctx, pass.NewRecord(id.Email, conf.IntentID, pass.StatusIssued, cred)); err != nil {
		return Result{}, err
	}

	return Result{Credential: cred, PaymentIntentID: conf.IntentID}, nil
}
