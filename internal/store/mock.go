package store

import (
	"context"

	"akhmetov/rassrochka-crm/internal/models"
)

// FailingClientStore wraps a ClientStore and fails Create for a chosen
// set of client names. It exercises the per-record failure paths of bulk
// import in tests.
type FailingClientStore struct {
	Inner    ClientStore
	FailFor  map[string]error
	Attempts int
}

// Create fails with the configured error when the client name is marked,
// otherwise delegates to the inner store.
func (f *FailingClientStore) Create(ctx context.Context, client models.Client) (models.Client, error) {
	f.Attempts++
	if err, ok := f.FailFor[client.Name]; ok {
		return models.Client{}, err
	}
	return f.Inner.Create(ctx, client)
}

// Update delegates to the inner store.
func (f *FailingClientStore) Update(ctx context.Context, client models.Client) error {
	return f.Inner.Update(ctx, client)
}

// Delete delegates to the inner store.
func (f *FailingClientStore) Delete(ctx context.Context, id string) error {
	return f.Inner.Delete(ctx, id)
}

// Get delegates to the inner store.
func (f *FailingClientStore) Get(ctx context.Context, id string) (models.Client, error) {
	return f.Inner.Get(ctx, id)
}

// ListByCapital delegates to the inner store.
func (f *FailingClientStore) ListByCapital(ctx context.Context, capitalID string) ([]models.Client, error) {
	return f.Inner.ListByCapital(ctx, capitalID)
}
