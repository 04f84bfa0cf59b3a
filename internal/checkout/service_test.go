package checkout

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/vietpass/vietpass/internal/config"
	"github.com/vietpass/vietpass/internal/identity"
	"github.com/vietpass/vietpass/internal/notification"
	"github.com/vietpass/vietpass/internal/pass"
	"github.com/vietpass/vietpass/internal/session"
)

type countingMinter struct {
	inner Minter
	calls int
	lastP string
	fail  error
}

func (m *countingMinter) MintCredential(ctx context.Context, paymentIntentID string, id identity.Identity) (pass.Credential, error) {
	m.calls++
	m.lastP = paymentIntentID
	if m.fail != nil {
		return pass.Credential{}, m.fail
	}
	return m.inner.MintCredential(ctx, paymentIntentID, id)
}

type recordingNotifier struct {
	messages []notification.Message
}

func (n *recordingNotifier) Send(_ context.Context, msg notification.Message) error {
	n.messages = append(n.messages, msg)
	return nil
}

func testConfig() config.Config {
	return config.Config{
		PassPrice:       1900,
		PassCurrency:    "usd",
		PassValidity:    30 * 24 * time.Hour,
		ContractAddress: "0xabc",
		Network:         "u2u-nebulas",
	}
}

func newTestService(t *testing.T, minter Minter, notifier notification.Notifier) (*Service, session.Store, pass.Repository) {
	t.Helper()
	store := session.NewMemoryStore()
	records := pass.NewMemoryRepository()
	svc, err := NewService(testConfig(), store, NewStaticPaymentProvider(), minter, records, notifier)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, store, records
}

func seedIdentity(t *testing.T, store session.Store, sid string) {
	t.Helper()
	err := store.SaveIdentity(context.Background(), sid, identity.Identity{
		Email: "nomad@example.com",
		Name:  "Alex Chen",
	})
	if err != nil {
		t.Fatalf("seed identity: %v", err)
	}
}

func TestPurchaseIssuesCredential(t *testing.T) {
	ctx := context.Background()
	minter := &countingMinter{inner: StaticMinter{ContractAddress: "0xabc", Network: "u2u-nebulas", Validity: 30 * 24 * time.Hour}}
	svc, store, records := newTestService(t, minter, nil)
	seedIdentity(t, store, "sess-1")

	res, err := svc.Purchase(ctx, "sess-1", CardInput{Number: "4242424242424242", Expiry: "12/29", CVC: "123"})
	if err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if res.Credential.OwnerEmail != "nomad@example.com" {
		t.Fatalf("credential owner mismatch: %s", res.Credential.OwnerEmail)
	}
	if res.PaymentIntentID == "" || minter.lastP != res.PaymentIntentID {
		t.Fatalf("minter saw %q, result says %q", minter.lastP, res.PaymentIntentID)
	}

	cred, err := store.Credential(ctx, "sess-1")
	if err != nil || cred == nil {
		t.Fatalf("credential not persisted: %v %v", cred, err)
	}
	if cred.TokenID != res.Credential.TokenID {
		t.Fatalf("persisted credential mismatch")
	}

	rec, err := records.FindByEmail(ctx, "nomad@example.com")
	if err != nil {
		t.Fatalf("issuance record: %v", err)
	}
	if rec.Status != pass.StatusIssued {
		t.Fatalf("expected issued record, got %s", rec.Status)
	}
}

func TestPurchaseRequiresIdentity(t *testing.T) {
	minter := &countingMinter{inner: StaticMinter{}}
	svc, _, _ := newTestService(t, minter, nil)

	_, err := svc.Purchase(context.Background(), "sess-none", CardInput{Number: "4242424242424242"})
	if !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
	if minter.calls != 0 {
		t.Fatal("minter must not be called without identity")
	}
}

func TestPurchaseDeclinedSkipsIssuance(t *testing.T) {
	minter := &countingMinter{inner: StaticMinter{}}
	svc, store, _ := newTestService(t, minter, nil)
	seedIdentity(t, store, "sess-1")

	_, err := svc.Purchase(context.Background(), "sess-1", CardInput{Number: "4000000000000002", Expiry: "12/29", CVC: "123"})
	if !errors.Is(err, ErrPaymentDeclined) {
		t.Fatalf("expected ErrPaymentDeclined, got %v", err)
	}
	var declined *DeclinedError
	if !errors.As(err, &declined) || declined.Reason != "card_declined" {
		t.Fatalf("expected card_declined reason, got %v", err)
	}
	if minter.calls != 0 {
		t.Fatal("minter must not be called after a decline")
	}
	if cred, _ := store.Credential(context.Background(), "sess-1"); cred != nil {
		t.Fatal("no credential may be stored on decline")
	}
}

func TestPurchaseCapturedButNotIssued(t *testing.T) {
	ctx := context.Background()
	minter := &countingMinter{fail: fmt.Errorf("mint rpc exploded")}
	notifier := &recordingNotifier{}
	svc, store, records := newTestService(t, minter, notifier)
	seedIdentity(t, store, "sess-1")

	_, err := svc.Purchase(ctx, "sess-1", CardInput{Number: "4242424242424242", Expiry: "12/29", CVC: "123"})
	if !errors.Is(err, ErrIssuanceFailed) {
		t.Fatalf("expected ErrIssuanceFailed, got %v", err)
	}
	var unissued *CapturedNotIssuedError
	if !errors.As(err, &unissued) || unissued.PaymentIntentID == "" {
		t.Fatalf("expected captured-not-issued with intent id, got %v", err)
	}

	stuck, err := records.ListByStatus(ctx, pass.StatusCapturedUnissued)
	if err != nil || len(stuck) != 1 {
		t.Fatalf("expected one captured-unissued record, got %v %v", stuck, err)
	}
	if stuck[0].PaymentIntentID != unissued.PaymentIntentID {
		t.Fatalf("record intent %s != error intent %s", stuck[0].PaymentIntentID, unissued.PaymentIntentID)
	}

	if len(notifier.messages) != 1 || notifier.messages[0].Kind != notification.KindIssuanceFailure {
		t.Fatalf("expected support notification, got %+v", notifier.messages)
	}

	if cred, _ := store.Credential(ctx, "sess-1"); cred != nil {
		t.Fatal("no credential may be stored when issuance failed")
	}
}

func TestStaticProviderRejectsUnknownSecret(t *testing.T) {
	p := NewStaticPaymentProvider()
	if _, err := p.ConfirmCardPayment(context.Background(), "pi_bogus_secret", CardInput{Number: "4242424242424242"}); err == nil {
		t.Fatal("expected error for unknown client secret")
	}
}
