package schedule

import (
	"time"

	"akhmetov/rassrochka-crm/internal/dateutils"
	"akhmetov/rassrochka-crm/internal/models"
)

// Classify computes the effective display state of a scheduled payment
// relative to today. It is a pure function: the stored status is read,
// never altered.
//
// A stored paid status always wins. Otherwise the due date decides by
// date-only comparison: past is overdue, today is due today, future is
// upcoming. Note that an entry stored as overdue with a due date still in
// the future displays as upcoming; stored overdue is authoritative only
// together with a past-or-present due date. That tolerance for stale
// stored statuses is intentional.
func Classify(entry models.PaymentScheduleEntry, today time.Time) models.DisplayState {
	if entry.Status == models.StatusPaid {
		return models.DisplayPaid
	}

	switch dateutils.CompareDates(entry.DueDate, today) {
	case -1:
		return models.DisplayOverdue
	case 0:
		return models.DisplayDueToday
	default:
		return models.DisplayUpcoming
	}
}

// ClassifyAll maps Classify over a client's schedule, preserving order.
func ClassifyAll(entries []models.PaymentScheduleEntry, today time.Time) []models.DisplayState {
	states := make([]models.DisplayState, len(entries))
	for i, entry := range entries {
		states[i] = Classify(entry, today)
	}
	return states
}
