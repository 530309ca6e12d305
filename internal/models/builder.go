package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ClientBuilder provides a fluent API for constructing clients. Both the
// importer and the direct-creation path use it so that defaulting rules
// (debt falls back to purchase amount, months fall back to the schedule
// length) live in one place.
type ClientBuilder struct {
	client Client
	err    error
}

// NewClientBuilder creates a ClientBuilder with zeroed monetary defaults.
func NewClientBuilder() *ClientBuilder {
	return &ClientBuilder{
		client: Client{
			PurchaseAmount: decimal.Zero,
			DebtAmount:     decimal.Zero,
			MonthlyPayment: decimal.Zero,
		},
	}
}

// WithName sets the client name. A name is required to build.
func (b *ClientBuilder) WithName(name string) *ClientBuilder {
	if b.err != nil {
		return b
	}
	b.client.Name = name
	return b
}

// WithProduct sets the product description.
func (b *ClientBuilder) WithProduct(product string) *ClientBuilder {
	if b.err != nil {
		return b
	}
	b.client.Product = product
	return b
}

// WithCapitalID associates the client with a capital.
func (b *ClientBuilder) WithCapitalID(id string) *ClientBuilder {
	if b.err != nil {
		return b
	}
	b.client.CapitalID = id
	return b
}

// WithPurchaseAmount sets the purchase amount.
func (b *ClientBuilder) WithPurchaseAmount(amount decimal.Decimal) *ClientBuilder {
	if b.err != nil {
		return b
	}
	b.client.PurchaseAmount = amount
	return b
}

// WithDebtAmount sets the debt amount.
func (b *ClientBuilder) WithDebtAmount(amount decimal.Decimal) *ClientBuilder {
	if b.err != nil {
		return b
	}
	b.client.DebtAmount = amount
	return b
}

// WithMonthlyPayment sets the monthly payment amount.
func (b *ClientBuilder) WithMonthlyPayment(amount decimal.Decimal) *ClientBuilder {
	if b.err != nil {
		return b
	}
	b.client.MonthlyPayment = amount
	return b
}

// WithStartDate sets the start date of the installment plan.
func (b *ClientBuilder) WithStartDate(start time.Time) *ClientBuilder {
	if b.err != nil {
		return b
	}
	b.client.StartDate = start
	return b
}

// WithMonths sets the term length in months.
func (b *ClientBuilder) WithMonths(months int) *ClientBuilder {
	if b.err != nil {
		return b
	}
	if months < 0 {
		b.err = fmt.Errorf("months cannot be negative: %d", months)
		return b
	}
	b.client.Months = months
	return b
}

// WithContact sets the client's address and phone.
func (b *ClientBuilder) WithContact(address, phone string) *ClientBuilder {
	if b.err != nil {
		return b
	}
	b.client.Address = address
	b.client.Phone = phone
	return b
}

// WithGuarantor sets the guarantor's name and phone.
func (b *ClientBuilder) WithGuarantor(name, phone string) *ClientBuilder {
	if b.err != nil {
		return b
	}
	b.client.GuarantorName = name
	b.client.GuarantorPhone = phone
	return b
}

// WithSchedule attaches a payment schedule.
func (b *ClientBuilder) WithSchedule(entries []PaymentScheduleEntry) *ClientBuilder {
	if b.err != nil {
		return b
	}
	b.client.Schedule = entries
	return b
}

// Build validates and returns the constructed client. Defaulting rules:
// a zero debt amount falls back to the purchase amount, and zero months
// fall back to the schedule length, then to 12.
func (b *ClientBuilder) Build() (Client, error) {
	if b.err != nil {
		return Client{}, b.err
	}
	if b.client.Name == "" {
		return Client{}, errors.New("client name is required")
	}
	if b.client.DebtAmount.IsZero() {
		b.client.DebtAmount = b.client.PurchaseAmount
	}
	if b.client.Months == 0 {
		if n := len(b.client.Schedule); n > 0 {
			b.client.Months = n
		} else {
			b.client.Months = 12
		}
	}
	return b.client, nil
}
