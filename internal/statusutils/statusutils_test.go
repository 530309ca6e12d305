package statusutils

import (
	"testing"

	"akhmetov/rassrochka-crm/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		label    interface{}
		expected models.PaymentStatus
	}{
		{"Russian paid", "Оплачен", models.StatusPaid},
		{"Russian paid feminine", "оплачена", models.StatusPaid},
		{"Russian paid alternative", "Выплачено", models.StatusPaid},
		{"English paid", "PAID", models.StatusPaid},
		{"Russian overdue", "Просрочен", models.StatusOverdue},
		{"English overdue", "overdue", models.StatusOverdue},
		{"Substring inside sentence", "платёж оплачен 01.12.2024", models.StatusPaid},
		{"Whitespace around label", "  оплачен  ", models.StatusPaid},
		{"Empty label", "", models.StatusPending},
		{"Nil label", nil, models.StatusPending},
		{"Unknown label", "ожидается", models.StatusPending},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Resolve(tc.label))
		})
	}
}

func TestResolveIdempotent(t *testing.T) {
	// Resolving an already-canonical state name returns that same state.
	for _, status := range []models.PaymentStatus{models.StatusPending, models.StatusPaid, models.StatusOverdue} {
		assert.Equal(t, status, Resolve(string(status)))
	}
}

func TestResolverTableOrderWins(t *testing.T) {
	// Both rules match "paid overdue"; the first rule in the table decides.
	resolver, err := NewResolverWithRules([]SynonymRule{
		{Pattern: "overdue", State: models.StatusOverdue},
		{Pattern: "paid", State: models.StatusPaid},
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusOverdue, resolver.Resolve("paid overdue"))

	reversed, err := NewResolverWithRules([]SynonymRule{
		{Pattern: "paid", State: models.StatusPaid},
		{Pattern: "overdue", State: models.StatusOverdue},
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPaid, reversed.Resolve("paid overdue"))
}

func TestNewResolverWithRulesValidation(t *testing.T) {
	_, err := NewResolverWithRules([]SynonymRule{{Pattern: "", State: models.StatusPaid}})
	assert.Error(t, err)

	_, err = NewResolverWithRules([]SynonymRule{{Pattern: "done", State: "finished"}})
	assert.Error(t, err)
}
