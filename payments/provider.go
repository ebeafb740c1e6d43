package payments

import (
	"context"
	"errors"
)

// Intent statuses, mirroring the processor's lifecycle.
const (
	StatusPending   = "pending"
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

// Intent is the provider's record of a charge. Amount is in minor units.
type Intent struct {
	ID           string            `json:"id"`
	ClientSecret string            `json:"clientSecret"`
	Amount       int64             `json:"amount"`
	Currency     string            `json:"currency"`
	Status       string            `json:"status"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

var ErrIntentNotFound = errors.New("payment intent not found")

// Provider is the payment authority: it custodies real payment state. The
// booking engine only ever creates intents and reads back their outcome.
type Provider interface {
	CreateIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (Intent, error)
	RetrieveIntent(ctx context.Context, id string) (Intent, error)
}
