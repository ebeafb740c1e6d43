package payments

import (
	"context"
	"testing"
)

func TestLocalProviderLifecycle(t *testing.T) {
	p := NewLocalProvider()
	ctx := context.Background()

	created, err := p.CreateIntent(ctx, 100000, "usd", map[string]string{"itemType": "package"})
	if err != nil {
		t.Fatalf("CreateIntent: %v", err)
	}
	if created.Status != StatusPending {
		t.Errorf("new intent status = %q, want %q", created.Status, StatusPending)
	}
	if created.ClientSecret == "" || created.ID == "" {
		t.Error("expected non-empty id and client secret")
	}

	got, err := p.RetrieveIntent(ctx, created.ID)
	if err != nil {
		t.Fatalf("RetrieveIntent: %v", err)
	}
	if got.Amount != 100000 || got.Currency != "usd" {
		t.Errorf("retrieved %d %s, want 100000 usd", got.Amount, got.Currency)
	}

	if err := p.SetStatus(created.ID, StatusSucceeded); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	got, _ = p.RetrieveIntent(ctx, created.ID)
	if got.Status != StatusSucceeded {
		t.Errorf("status after SetStatus = %q, want %q", got.Status, StatusSucceeded)
	}
}

func TestLocalProviderUnknownIntent(t *testing.T) {
	p := NewLocalProvider()
	if _, err := p.RetrieveIntent(context.Background(), "pi_missing"); err != ErrIntentNotFound {
		t.Errorf("RetrieveIntent(unknown) err = %v, want ErrIntentNotFound", err)
	}
	if err := p.SetStatus("pi_missing", StatusSucceeded); err != ErrIntentNotFound {
		t.Errorf("SetStatus(unknown) err = %v, want ErrIntentNotFound", err)
	}
}
