// Package schedule generates amortized payment schedules from purchase
// terms and classifies scheduled payments against a reference date.
package schedule

import (
	"strconv"
	"time"

	"akhmetov/rassrochka-crm/internal/dateutils"
	"akhmetov/rassrochka-crm/internal/importerror"
	"akhmetov/rassrochka-crm/internal/models"

	"github.com/shopspring/decimal"
)

// Generate produces exactly months entries due at start + i calendar
// months for i = 0..months-1. Month arithmetic clamps to the last day of
// shorter target months, so a plan starting on the 31st stays within each
// month. Every entry is created pending with the monthly amount and no
// paid date.
//
// A term below one month is an input-validation error, never coerced.
func Generate(start time.Time, monthly decimal.Decimal, months int) ([]models.PaymentScheduleEntry, error) {
	if months < 1 {
		return nil, &importerror.ValidationError{
			Field:  "months",
			Value:  strconv.Itoa(months),
			Reason: "term length must be at least one month",
		}
	}

	start = dateutils.DateOnly(start)
	entries := make([]models.PaymentScheduleEntry, 0, months)
	for i := 0; i < months; i++ {
		entries = append(entries, models.PaymentScheduleEntry{
			DueDate: dateutils.AddMonths(start, i),
			Amount:  monthly,
			Status:  models.StatusPending,
		})
	}
	return entries, nil
}
