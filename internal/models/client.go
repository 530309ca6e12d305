package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Client is one debtor under an installment plan. The ID is assigned by the
// client store on creation; normalized records produced by the importer
// carry an empty ID until persisted.
type Client struct {
	ID             string                 `json:"id,omitempty" yaml:"id,omitempty"`
	CapitalID      string                 `json:"capital_id,omitempty" yaml:"capital_id,omitempty"`
	Name           string                 `json:"name" yaml:"name"`
	Product        string                 `json:"product" yaml:"product"`
	PurchaseAmount decimal.Decimal        `json:"purchase_amount" yaml:"purchase_amount"`
	DebtAmount     decimal.Decimal        `json:"debt_amount" yaml:"debt_amount"`
	MonthlyPayment decimal.Decimal        `json:"monthly_payment" yaml:"monthly_payment"`
	StartDate      time.Time              `json:"start_date" yaml:"start_date"`
	Months         int                    `json:"months" yaml:"months"`
	Address        string                 `json:"client_address,omitempty" yaml:"client_address,omitempty"`
	Phone          string                 `json:"client_phone,omitempty" yaml:"client_phone,omitempty"`
	GuarantorName  string                 `json:"guarantor_name,omitempty" yaml:"guarantor_name,omitempty"`
	GuarantorPhone string                 `json:"guarantor_phone,omitempty" yaml:"guarantor_phone,omitempty"`
	Schedule       []PaymentScheduleEntry `json:"payment_schedule" yaml:"payment_schedule"`
}

// OutstandingDebt returns the amount the client still owes in total terms:
// the debt amount when set, falling back to the purchase amount, then zero.
// Negative stored values are treated as zero.
func (c Client) OutstandingDebt() decimal.Decimal {
	amount := c.DebtAmount
	if amount.IsZero() {
		amount = c.PurchaseAmount
	}
	if amount.IsNegative() {
		return decimal.Zero
	}
	return amount
}

// CollectedAmount sums the amounts of all schedule entries whose stored
// status is paid.
func (c Client) CollectedAmount() decimal.Decimal {
	total := decimal.Zero
	for _, entry := range c.Schedule {
		if entry.IsPaid() {
			total = total.Add(entry.Amount)
		}
	}
	return total
}

// IsActive returns true while the client has at least one open (pending or
// overdue) schedule entry. A client with no open entries is completed.
func (c Client) IsActive() bool {
	for _, entry := range c.Schedule {
		if entry.IsOpen() {
			return true
		}
	}
	return false
}
