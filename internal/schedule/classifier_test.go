package schedule

import (
	"testing"
	"time"

	"akhmetov/rassrochka-crm/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func entry(due time.Time, status models.PaymentStatus) models.PaymentScheduleEntry {
	return models.PaymentScheduleEntry{
		DueDate: due,
		Amount:  decimal.NewFromInt(1000),
		Status:  status,
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		entry    models.PaymentScheduleEntry
		today    time.Time
		expected models.DisplayState
	}{
		{
			"Paid entry stays paid before due date",
			entry(date(2024, time.January, 1), models.StatusPaid),
			date(2024, time.January, 15),
			models.DisplayPaid,
		},
		{
			"Paid entry stays paid after due date",
			entry(date(2024, time.January, 1), models.StatusPaid),
			date(2024, time.June, 1),
			models.DisplayPaid,
		},
		{
			"Pending entry before due date is upcoming",
			entry(date(2024, time.February, 1), models.StatusPending),
			date(2024, time.January, 15),
			models.DisplayUpcoming,
		},
		{
			"Pending entry past due date is overdue",
			entry(date(2024, time.February, 1), models.StatusPending),
			date(2024, time.March, 1),
			models.DisplayOverdue,
		},
		{
			"Pending entry due today",
			entry(date(2024, time.February, 1), models.StatusPending),
			date(2024, time.February, 1),
			models.DisplayDueToday,
		},
		{
			"Stored overdue with past due date is overdue",
			entry(date(2024, time.January, 1), models.StatusOverdue),
			date(2024, time.March, 1),
			models.DisplayOverdue,
		},
		{
			// Stored overdue is authoritative only with a past-or-present
			// due date; a future due date displays as upcoming.
			"Stored overdue with future due date is upcoming",
			entry(date(2024, time.June, 1), models.StatusOverdue),
			date(2024, time.March, 1),
			models.DisplayUpcoming,
		},
		{
			"Time of day is ignored",
			entry(date(2024, time.February, 1), models.StatusPending),
			time.Date(2024, time.February, 1, 23, 59, 0, 0, time.UTC),
			models.DisplayDueToday,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Classify(tc.entry, tc.today))
		})
	}
}

func TestClassifyDoesNotMutate(t *testing.T) {
	e := entry(date(2024, time.January, 1), models.StatusPending)
	_ = Classify(e, date(2024, time.June, 1))
	assert.Equal(t, models.StatusPending, e.Status)
	assert.Nil(t, e.PaidDate)
}

func TestClassifyAll(t *testing.T) {
	// Scenario from the capital dashboard: one paid, one pending future.
	entries := []models.PaymentScheduleEntry{
		entry(date(2024, time.January, 1), models.StatusPaid),
		entry(date(2024, time.February, 1), models.StatusPending),
	}

	states := ClassifyAll(entries, date(2024, time.January, 15))
	assert.Equal(t, []models.DisplayState{models.DisplayPaid, models.DisplayUpcoming}, states)

	states = ClassifyAll(entries, date(2024, time.March, 1))
	assert.Equal(t, []models.DisplayState{models.DisplayPaid, models.DisplayOverdue}, states)
}
