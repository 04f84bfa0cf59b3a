package pass

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestCredentialExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cred := Credential{ExpiresAt: now.Add(time.Second)}
	if cred.Expired(now) {
		t.Fatal("credential expiring in the future reported expired")
	}
	cred.ExpiresAt = now
	if !cred.Expired(now) {
		t.Fatal("credential expiring exactly now must be expired")
	}
	cred.ExpiresAt = now.Add(-time.Second)
	if !cred.Expired(now) {
		t.Fatal("past credential reported valid")
	}
}

func TestCredentialBelongsTo(t *testing.T) {
	cred := Credential{OwnerEmail: "nomad@example.com"}
	if !cred.BelongsTo("nomad@example.com") {
		t.Fatal("owner not recognized")
	}
	if cred.BelongsTo("other@example.com") {
		t.Fatal("foreign email accepted")
	}
	if cred.BelongsTo("") {
		t.Fatal("empty email accepted")
	}
}

func TestMemoryRepositoryLatestByEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	first := NewRecord("nomad@example.com", "pi_1", StatusCapturedUnissued, Credential{})
	second := NewRecord("nomad@example.com", "pi_2", StatusIssued, Credential{TokenID: 7, OwnerEmail: "nomad@example.com"})
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("create: %v", err)
	}

	rec, err := repo.FindByEmail(ctx, "nomad@example.com")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if rec.PaymentIntentID != "pi_2" {
		t.Fatalf("expected latest record, got %s", rec.PaymentIntentID)
	}

	if _, err := repo.FindByEmail(ctx, "ghost@example.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	stuck, err := repo.ListByStatus(ctx, StatusCapturedUnissued)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(stuck) != 1 || stuck[0].PaymentIntentID != "pi_1" {
		t.Fatalf("unexpected captured-unissued listing: %+v", stuck)
	}
}
