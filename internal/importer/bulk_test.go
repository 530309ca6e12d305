package importer

import (
	"context"
	"errors"
	"testing"

	"akhmetov/rassrochka-crm/internal/logging"
	"akhmetov/rassrochka-crm/internal/models"
	"akhmetov/rassrochka-crm/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clientsNamed(names ...string) []models.Client {
	clients := make([]models.Client, len(names))
	for i, name := range names {
		clients[i] = models.Client{Name: name}
	}
	return clients
}

func TestBulkImport(t *testing.T) {
	memStore := store.NewMemoryStore()
	bulk := NewBulkImporter(memStore, &logging.MockLogger{}, 10)

	result, err := bulk.Import(context.Background(), "cap-1", clientsNamed("Ivanov", "Sidorova"))
	require.NoError(t, err)

	assert.NotEmpty(t, result.BatchID)
	assert.Equal(t, 2, result.Succeeded)
	assert.Equal(t, 0, result.Failed)
	assert.Empty(t, result.Reasons)

	persisted, err := memStore.ListByCapital(context.Background(), "cap-1")
	require.NoError(t, err)
	assert.Len(t, persisted, 2)
	for _, client := range persisted {
		assert.NotEmpty(t, client.ID)
		assert.Equal(t, "cap-1", client.CapitalID)
	}
}

func TestBulkImportIsolatesFailures(t *testing.T) {
	failing := &store.FailingClientStore{
		Inner:   store.NewMemoryStore(),
		FailFor: map[string]error{"Bad": errors.New("store unavailable")},
	}
	bulk := NewBulkImporter(failing, &logging.MockLogger{}, 10)

	result, err := bulk.Import(context.Background(), "cap-1", clientsNamed("Ivanov", "Bad", "Sidorova"))
	require.NoError(t, err)

	// The failed record is tallied; the records around it still persist.
	assert.Equal(t, 2, result.Succeeded)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Reasons, 1)
	assert.Contains(t, result.Reasons[0], "Bad")
	assert.Contains(t, result.Reasons[0], "store unavailable")
	assert.Equal(t, 3, failing.Attempts)
}

func TestBulkImportBoundsReasons(t *testing.T) {
	failAll := &store.FailingClientStore{
		Inner: store.NewMemoryStore(),
		FailFor: map[string]error{
			"A": errors.New("down"), "B": errors.New("down"),
			"C": errors.New("down"), "D": errors.New("down"),
		},
	}
	bulk := NewBulkImporter(failAll, &logging.MockLogger{}, 2)

	result, err := bulk.Import(context.Background(), "cap-1", clientsNamed("A", "B", "C", "D"))
	require.NoError(t, err)

	assert.Equal(t, 4, result.Failed)
	assert.Len(t, result.Reasons, 2)
}

func TestBulkImportCancellation(t *testing.T) {
	memStore := store.NewMemoryStore()
	bulk := NewBulkImporter(memStore, &logging.MockLogger{}, 10)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := bulk.Import(ctx, "cap-1", clientsNamed("Ivanov", "Sidorova"))
	require.ErrorIs(t, err, context.Canceled)

	// Cancellation is checkpointed before each record: nothing was
	// persisted and the tally says so.
	assert.Equal(t, 0, result.Succeeded)
	assert.Equal(t, 0, result.Failed)

	persisted, listErr := memStore.ListByCapital(context.Background(), "cap-1")
	require.NoError(t, listErr)
	assert.Empty(t, persisted)
}

func TestBulkImportEmptyBatch(t *testing.T) {
	bulk := NewBulkImporter(store.NewMemoryStore(), &logging.MockLogger{}, 10)

	result, err := bulk.Import(context.Background(), "cap-1", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Succeeded)
	assert.Equal(t, 0, result.Failed)
}
