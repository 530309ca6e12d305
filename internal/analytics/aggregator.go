// Package analytics rolls a capital's clients and expenses up into the
// aggregate metrics shown on the capital dashboard.
package analytics

import (
	"akhmetov/rassrochka-crm/internal/models"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Aggregate computes the metrics for one capital from its clients and
// expenses. All monetary sums use exact decimal accumulation; rates with
// a zero denominator are defined as zero rather than dividing.
//
// Counts are taken over stored statuses: an entry stored pending whose
// due date has passed counts as pending here, not overdue. Display-level
// classification is the schedule package's concern.
func Aggregate(clients []models.Client, expenses []models.Expense) models.CapitalMetrics {
	metrics := models.CapitalMetrics{
		TotalClients:    len(clients),
		TotalAmount:     decimal.Zero,
		CollectedAmount: decimal.Zero,
		TotalExpenses:   decimal.Zero,
		CollectionRate:  decimal.Zero,
	}

	for _, client := range clients {
		metrics.TotalAmount = metrics.TotalAmount.Add(client.OutstandingDebt())
		metrics.TotalPayments += len(client.Schedule)

		active := false
		for _, entry := range client.Schedule {
			switch entry.Status {
			case models.StatusPaid:
				metrics.CollectedAmount = metrics.CollectedAmount.Add(entry.Amount)
				metrics.PaidPayments++
			case models.StatusOverdue:
				metrics.OverduePayments++
				active = true
			case models.StatusPending:
				active = true
			}
		}
		if active {
			metrics.ActiveClients++
		}
	}
	metrics.CompletedClients = metrics.TotalClients - metrics.ActiveClients

	for _, expense := range expenses {
		metrics.TotalExpenses = metrics.TotalExpenses.Add(expense.Amount)
	}

	if metrics.TotalAmount.IsPositive() {
		metrics.CollectionRate = metrics.CollectedAmount.Div(metrics.TotalAmount).Mul(hundred)
	}
	if metrics.TotalPayments > 0 {
		metrics.PaymentCompletionRate = decimal.NewFromInt(int64(metrics.PaidPayments)).
			Div(decimal.NewFromInt(int64(metrics.TotalPayments))).Mul(hundred)
	} else {
		metrics.PaymentCompletionRate = decimal.Zero
	}

	metrics.ToPayAmount = metrics.TotalAmount.Sub(metrics.CollectedAmount)
	metrics.NetProfit = metrics.CollectedAmount.Sub(metrics.TotalExpenses)

	return metrics
}
