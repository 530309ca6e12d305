// Package models defines the domain types shared by the importer, the
// schedule engine and the analytics aggregator: clients, their payment
// schedules, capitals and expenses.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the stored lifecycle state of a scheduled payment.
// It is mutated only by explicit status-update actions, never by the
// display classifier.
type PaymentStatus string

const (
	// StatusPending indicates a payment that has not been made yet.
	StatusPending PaymentStatus = "pending"
	// StatusPaid indicates a payment that has been received.
	StatusPaid PaymentStatus = "paid"
	// StatusOverdue indicates a payment marked as missed.
	StatusOverdue PaymentStatus = "overdue"
)

// DisplayState is the effective state of a scheduled payment relative to a
// reference date. It is computed, never stored.
type DisplayState string

const (
	// DisplayPaid is shown for any entry whose stored status is paid.
	DisplayPaid DisplayState = "paid"
	// DisplayOverdue is shown for an unpaid entry whose due date has passed.
	DisplayOverdue DisplayState = "overdue"
	// DisplayDueToday is shown for an unpaid entry due on the reference date.
	DisplayDueToday DisplayState = "due_today"
	// DisplayUpcoming is shown for an unpaid entry due after the reference date.
	DisplayUpcoming DisplayState = "upcoming"
)

// PaymentScheduleEntry is one due installment in a client's schedule.
// Entries are created together with the client and kept in chronological
// order; PaidDate is set only when Status is StatusPaid.
type PaymentScheduleEntry struct {
	DueDate  time.Time       `json:"due_date" yaml:"due_date"`
	Amount   decimal.Decimal `json:"amount" yaml:"amount"`
	Status   PaymentStatus   `json:"status" yaml:"status"`
	PaidDate *time.Time      `json:"paid_date,omitempty" yaml:"paid_date,omitempty"`
}

// IsPaid returns true if the entry's stored status is paid.
func (e PaymentScheduleEntry) IsPaid() bool {
	return e.Status == StatusPaid
}

// IsOpen returns true if the entry still awaits payment (pending or overdue).
func (e PaymentScheduleEntry) IsOpen() bool {
	return e.Status == StatusPending || e.Status == StatusOverdue
}
