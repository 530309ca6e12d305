// Package store defines the collaborator interfaces the core depends on
// for persistence, and provides an in-memory implementation used by the
// CLI and tests. Every call is independently failable; the core never
// assumes one store call succeeding implies anything about the next.
package store

import (
	"context"
	"errors"

	"akhmetov/rassrochka-crm/internal/models"

	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

// ClientStore persists client records. Create assigns the client ID.
type ClientStore interface {
	Create(ctx context.Context, client models.Client) (models.Client, error)
	Update(ctx context.Context, client models.Client) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (models.Client, error)
	ListByCapital(ctx context.Context, capitalID string) ([]models.Client, error)
}

// CapitalStore persists capitals. Balance changes go through
// UpdateBalance only.
type CapitalStore interface {
	Create(ctx context.Context, capital models.Capital) (models.Capital, error)
	UpdateBalance(ctx context.Context, id string, balance decimal.Decimal) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.Capital, error)
}

// ExpenseStore persists expenses.
type ExpenseStore interface {
	Create(ctx context.Context, expense models.Expense) (models.Expense, error)
	ListByCapital(ctx context.Context, capitalID string) ([]models.Expense, error)
}
