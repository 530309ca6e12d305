package store

import (
	"context"
	"testing"

	"akhmetov/rassrochka-crm/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreClientCRUD(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	created, err := s.Create(ctx, models.Client{Name: "Иванов Иван", CapitalID: "cap-1"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Иванов Иван", got.Name)

	got.Phone = "+7 900 123-45-67"
	require.NoError(t, s.Update(ctx, got))

	got, err = s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "+7 900 123-45-67", got.Phone)

	require.NoError(t, s.Delete(ctx, created.ID))
	_, err = s.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreNotFound(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Update(ctx, models.Client{ID: "missing"}), ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, "missing"), ErrNotFound)
	assert.ErrorIs(t, s.UpdateBalance(ctx, "missing", decimal.Zero), ErrNotFound)
	assert.ErrorIs(t, s.DeleteCapital(ctx, "missing"), ErrNotFound)
}

func TestMemoryStoreListByCapital(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Create(ctx, models.Client{Name: "Иванов", CapitalID: "cap-1"})
	require.NoError(t, err)
	_, err = s.Create(ctx, models.Client{Name: "Сидорова", CapitalID: "cap-1"})
	require.NoError(t, err)
	_, err = s.Create(ctx, models.Client{Name: "Петров", CapitalID: "cap-2"})
	require.NoError(t, err)

	clients, err := s.ListByCapital(ctx, "cap-1")
	require.NoError(t, err)
	assert.Len(t, clients, 2)

	clients, err = s.ListByCapital(ctx, "cap-3")
	require.NoError(t, err)
	assert.Empty(t, clients)
}

func TestMemoryStoreCapitals(t *testing.T) {
	ctx := context.Background()
	capitals := NewMemoryStore().Capitals()

	created, err := capitals.Create(ctx, models.Capital{Name: "Основной", Balance: decimal.NewFromInt(100000)})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	require.NoError(t, capitals.UpdateBalance(ctx, created.ID, decimal.NewFromInt(85000)))

	list, err := capitals.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "85000", list[0].Balance.String())

	require.NoError(t, capitals.Delete(ctx, created.ID))
	list, err = capitals.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestMemoryStoreExpenses(t *testing.T) {
	ctx := context.Background()
	expenses := NewMemoryStore().Expenses()

	_, err := expenses.Create(ctx, models.Expense{CapitalID: "cap-1", Amount: decimal.NewFromInt(5000)})
	require.NoError(t, err)
	_, err = expenses.Create(ctx, models.Expense{CapitalID: "cap-2", Amount: decimal.NewFromInt(9000)})
	require.NoError(t, err)

	list, err := expenses.ListByCapital(ctx, "cap-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "5000", list[0].Amount.String())
}

func TestMemoryStoreHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewMemoryStore()

	_, err := s.Create(ctx, models.Client{Name: "Иванов"})
	assert.ErrorIs(t, err, context.Canceled)
	_, err = s.ListByCapital(ctx, "cap-1")
	assert.ErrorIs(t, err, context.Canceled)
}
