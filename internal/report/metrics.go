package report

import (
	"fmt"
	"strings"

	"akhmetov/rassrochka-crm/internal/models"
)

// RenderMetrics formats capital metrics for terminal output. Amounts are
// rounded to two places here and nowhere earlier; aggregation itself is
// exact.
func RenderMetrics(metrics models.CapitalMetrics) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Clients:   %d total, %d active, %d completed\n",
		metrics.TotalClients, metrics.ActiveClients, metrics.CompletedClients)
	fmt.Fprintf(&b, "Payments:  %d total, %d paid, %d overdue\n",
		metrics.TotalPayments, metrics.PaidPayments, metrics.OverduePayments)
	fmt.Fprintf(&b, "Debt:      %s total, %s collected, %s to pay\n",
		metrics.TotalAmount.StringFixed(2), metrics.CollectedAmount.StringFixed(2), metrics.ToPayAmount.StringFixed(2))
	fmt.Fprintf(&b, "Expenses:  %s\n", metrics.TotalExpenses.StringFixed(2))
	fmt.Fprintf(&b, "Profit:    %s\n", metrics.NetProfit.StringFixed(2))
	fmt.Fprintf(&b, "Rates:     collection %s%%, completion %s%%\n",
		metrics.CollectionRate.StringFixed(1), metrics.PaymentCompletionRate.StringFixed(1))

	return b.String()
}
