package store

import (
	"context"
	"sync"

	"akhmetov/rassrochka-crm/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MemoryStore is an in-memory implementation of ClientStore, CapitalStore
// and ExpenseStore. It backs the CLI's single-run workflows and the test
// suite; production deployments plug in their own stores.
type MemoryStore struct {
	mu       sync.RWMutex
	clients  map[string]models.Client
	capitals map[string]models.Capital
	expenses map[string]models.Expense
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		clients:  make(map[string]models.Client),
		capitals: make(map[string]models.Capital),
		expenses: make(map[string]models.Expense),
	}
}

// Create stores a client and assigns it a fresh ID.
func (s *MemoryStore) Create(ctx context.Context, client models.Client) (models.Client, error) {
	if err := ctx.Err(); err != nil {
		return models.Client{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	client.ID = uuid.New().String()
	s.clients[client.ID] = client
	return client, nil
}

// Update replaces a stored client.
func (s *MemoryStore) Update(ctx context.Context, client models.Client) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clients[client.ID]; !ok {
		return ErrNotFound
	}
	s.clients[client.ID] = client
	return nil
}

// Delete removes a stored client.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clients[id]; !ok {
		return ErrNotFound
	}
	delete(s.clients, id)
	return nil
}

// Get returns a stored client by ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (models.Client, error) {
	if err := ctx.Err(); err != nil {
		return models.Client{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	client, ok := s.clients[id]
	if !ok {
		return models.Client{}, ErrNotFound
	}
	return client, nil
}

// ListByCapital returns all clients that belong to the given capital.
func (s *MemoryStore) ListByCapital(ctx context.Context, capitalID string) ([]models.Client, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var clients []models.Client
	for _, client := range s.clients {
		if client.CapitalID == capitalID {
			clients = append(clients, client)
		}
	}
	return clients, nil
}

// CreateCapital stores a capital and assigns it a fresh ID.
func (s *MemoryStore) CreateCapital(ctx context.Context, capital models.Capital) (models.Capital, error) {
	if err := ctx.Err(); err != nil {
		return models.Capital{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	capital.ID = uuid.New().String()
	s.capitals[capital.ID] = capital
	return capital, nil
}

// UpdateBalance sets a capital's balance.
func (s *MemoryStore) UpdateBalance(ctx context.Context, id string, balance decimal.Decimal) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	capital, ok := s.capitals[id]
	if !ok {
		return ErrNotFound
	}
	capital.Balance = balance
	s.capitals[id] = capital
	return nil
}

// DeleteCapital removes a stored capital.
func (s *MemoryStore) DeleteCapital(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.capitals[id]; !ok {
		return ErrNotFound
	}
	delete(s.capitals, id)
	return nil
}

// ListCapitals returns all stored capitals.
func (s *MemoryStore) ListCapitals(ctx context.Context) ([]models.Capital, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	capitals := make([]models.Capital, 0, len(s.capitals))
	for _, capital := range s.capitals {
		capitals = append(capitals, capital)
	}
	return capitals, nil
}

// CreateExpense stores an expense and assigns it a fresh ID.
func (s *MemoryStore) CreateExpense(ctx context.Context, expense models.Expense) (models.Expense, error) {
	if err := ctx.Err(); err != nil {
		return models.Expense{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	expense.ID = uuid.New().String()
	s.expenses[expense.ID] = expense
	return expense, nil
}

// ListExpensesByCapital returns all expenses recorded against a capital.
func (s *MemoryStore) ListExpensesByCapital(ctx context.Context, capitalID string) ([]models.Expense, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var expenses []models.Expense
	for _, expense := range s.expenses {
		if expense.CapitalID == capitalID {
			expenses = append(expenses, expense)
		}
	}
	return expenses, nil
}

// Capitals adapts the MemoryStore to the CapitalStore interface.
func (s *MemoryStore) Capitals() CapitalStore { return capitalView{s} }

// Expenses adapts the MemoryStore to the ExpenseStore interface.
func (s *MemoryStore) Expenses() ExpenseStore { return expenseView{s} }

type capitalView struct{ s *MemoryStore }

func (v capitalView) Create(ctx context.Context, capital models.Capital) (models.Capital, error) {
	return v.s.CreateCapital(ctx, capital)
}

func (v capitalView) UpdateBalance(ctx context.Context, id string, balance decimal.Decimal) error {
	return v.s.UpdateBalance(ctx, id, balance)
}

func (v capitalView) Delete(ctx context.Context, id string) error {
	return v.s.DeleteCapital(ctx, id)
}

func (v capitalView) List(ctx context.Context) ([]models.Capital, error) {
	return v.s.ListCapitals(ctx)
}

type expenseView struct{ s *MemoryStore }

func (v expenseView) Create(ctx context.Context, expense models.Expense) (models.Expense, error) {
	return v.s.CreateExpense(ctx, expense)
}

func (v expenseView) ListByCapital(ctx context.Context, capitalID string) ([]models.Expense, error) {
	return v.s.ListExpensesByCapital(ctx, capitalID)
}
