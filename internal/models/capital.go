package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Capital is a ledger that owns clients and expenses. Balance is mutated
// only by explicit balance-update actions; the core reads it for display.
type Capital struct {
	ID      string          `json:"id" yaml:"id"`
	Name    string          `json:"name" yaml:"name"`
	Balance decimal.Decimal `json:"balance" yaml:"balance"`
}

// Expense is a cost recorded against a capital. Expenses are consumed by
// the analytics aggregator, never produced by the core.
type Expense struct {
	ID          string          `json:"id" yaml:"id"`
	CapitalID   string          `json:"capital_id" yaml:"capital_id"`
	Amount      decimal.Decimal `json:"amount" yaml:"amount"`
	Description string          `json:"description" yaml:"description"`
	Date        time.Time       `json:"date" yaml:"date"`
}

// CapitalMetrics is the aggregate view of one capital's portfolio.
// Monetary fields are exact decimals; rates are percentages and defined as
// zero when their denominator is zero.
type CapitalMetrics struct {
	TotalClients          int             `json:"total_clients"`
	ActiveClients         int             `json:"active_clients"`
	CompletedClients      int             `json:"completed_clients"`
	TotalAmount           decimal.Decimal `json:"total_amount"`
	CollectedAmount       decimal.Decimal `json:"collected_amount"`
	ToPayAmount           decimal.Decimal `json:"to_pay_amount"`
	TotalExpenses         decimal.Decimal `json:"total_expenses"`
	NetProfit             decimal.Decimal `json:"net_profit"`
	TotalPayments         int             `json:"total_payments"`
	PaidPayments          int             `json:"paid_payments"`
	OverduePayments       int             `json:"overdue_payments"`
	CollectionRate        decimal.Decimal `json:"collection_rate"`
	PaymentCompletionRate decimal.Decimal `json:"payment_completion_rate"`
}
