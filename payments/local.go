package payments

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// LocalProvider keeps intents in memory. It stands in for the hosted
// processor during development and tests; the engine never depends on
// anything beyond the Provider interface.
type LocalProvider struct {
	mu      sync.RWMutex
	intents map[string]Intent
}

func NewLocalProvider() *LocalProvider {
	return &LocalProvider{intents: make(map[string]Intent)}
}

func (p *LocalProvider) CreateIntent(_ context.Context, amount int64, currency string, metadata map[string]string) (Intent, error) {
	id := "pi_" + uuid.NewString()
	intent := Intent{
		ID:           id,
		ClientSecret: id + "_secret_" + uuid.NewString(),
		Amount:       amount,
		Currency:     currency,
		Status:       StatusPending,
		Metadata:     metadata,
	}

	p.mu.Lock()
	p.intents[id] = intent
	p.mu.Unlock()
	return intent, nil
}

func (p *LocalProvider) RetrieveIntent(_ context.Context, id string) (Intent, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	intent, ok := p.intents[id]
	if !ok {
		return Intent{}, ErrIntentNotFound
	}
	return intent, nil
}

// SetStatus moves an intent to the given status, simulating the client
// completing (or failing) payment out-of-band.
func (p *LocalProvider) SetStatus(id, status string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	intent, ok := p.intents[id]
	if !ok {
		return ErrIntentNotFound
	}
	intent.Status = status
	p.intents[id] = intent
	return nil
}
