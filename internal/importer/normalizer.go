package importer

import (
	"fmt"
	"strings"
	"time"

	"akhmetov/rassrochka-crm/internal/dateutils"
	"akhmetov/rassrochka-crm/internal/logging"
	"akhmetov/rassrochka-crm/internal/models"
	"akhmetov/rassrochka-crm/internal/statusutils"

	"github.com/shopspring/decimal"
)

// RowError records why one input row could not yield a client record.
// Row is the 1-based position within the data rows.
type RowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Reason)
}

// Result is the outcome of one normalization pass: the records that could
// be extracted plus the rows that could not, in input order.
type Result struct {
	Records   []models.Client `json:"records"`
	RowErrors []RowError      `json:"row_errors"`
}

// Normalizer converts raw import payloads into normalized client records.
// The zero strictness mode follows the source system: unparseable amounts
// become zero rather than failing the row. StrictNumbers turns those into
// row errors instead.
type Normalizer struct {
	Statuses      *statusutils.Resolver
	Log           logging.Logger
	StrictNumbers bool

	// Now supplies the fallback date for unresolvable date cells.
	// Overridden in tests; defaults to time.Now.
	Now func() time.Time
}

// NewNormalizer creates a Normalizer with the built-in status synonym
// table and lenient number handling.
func NewNormalizer(logger logging.Logger) *Normalizer {
	if logger == nil {
		logger = logging.NewLogrusAdapterFromLogger(nil)
	}
	return &Normalizer{
		Statuses: statusutils.NewResolver(),
		Log:      logger,
		Now:      time.Now,
	}
}

// NormalizeRows extracts client records from positional spreadsheet rows
// using the given column layout. The layout is validated once up front;
// after that each row is processed independently and failures are
// collected in the result, never aborting the batch.
func (n *Normalizer) NormalizeRows(rows [][]string, layout Layout) (Result, error) {
	if err := layout.Validate(); err != nil {
		return Result{}, err
	}

	result := Result{}
	for i, row := range rows {
		rowNum := i + 1
		client, rowErr := n.normalizeRow(row, layout, rowNum)
		if rowErr != nil {
			n.Log.Warn("Skipping unusable row",
				logging.Field{Key: logging.FieldRow, Value: rowNum},
				logging.Field{Key: logging.FieldReason, Value: rowErr.Reason})
			result.RowErrors = append(result.RowErrors, *rowErr)
			continue
		}
		result.Records = append(result.Records, client)
	}

	n.Log.Info("Normalized spreadsheet rows",
		logging.Field{Key: logging.FieldCount, Value: len(result.Records)},
		logging.Field{Key: "skipped", Value: len(result.RowErrors)})
	return result, nil
}

func (n *Normalizer) normalizeRow(row []string, layout Layout, rowNum int) (models.Client, *RowError) {
	if rowIsEmpty(row) {
		return models.Client{}, &RowError{Row: rowNum, Reason: "row is empty"}
	}

	name := strings.TrimSpace(cell(row, layout.NameCol))
	if name == "" {
		return models.Client{}, &RowError{Row: rowNum, Reason: "client name is missing"}
	}

	purchase, err := n.parseAmount(cell(row, layout.PurchaseCol), "purchase_amount")
	if err != nil {
		return models.Client{}, &RowError{Row: rowNum, Reason: err.Error()}
	}
	debt, err := n.parseAmount(cell(row, layout.DebtCol), "debt_amount")
	if err != nil {
		return models.Client{}, &RowError{Row: rowNum, Reason: err.Error()}
	}
	monthly, err := n.parseAmount(cell(row, layout.MonthlyCol), "monthly_payment")
	if err != nil {
		return models.Client{}, &RowError{Row: rowNum, Reason: err.Error()}
	}

	now := n.Now()
	entries := n.extractSchedule(row, layout, monthly, now)

	client, buildErr := models.NewClientBuilder().
		WithName(name).
		WithPurchaseAmount(purchase).
		WithDebtAmount(debt).
		WithMonthlyPayment(monthly).
		WithStartDate(dateutils.ResolveAt(cell(row, layout.StartDateCol), now)).
		WithContact(strings.TrimSpace(cell(row, layout.AddressCol)), strings.TrimSpace(cell(row, layout.PhoneCol))).
		WithGuarantor(strings.TrimSpace(cell(row, layout.GuarantorNameCol)), strings.TrimSpace(cell(row, layout.GuarantorPhoneCol))).
		WithSchedule(entries).
		Build()
	if buildErr != nil {
		return models.Client{}, &RowError{Row: rowNum, Reason: buildErr.Error()}
	}
	return client, nil
}

// extractSchedule walks the (date, status) pair columns. A pair emits an
// entry only when its date cell is non-empty; the paid date is the
// resolved due date when and only when the resolved status is paid.
func (n *Normalizer) extractSchedule(row []string, layout Layout, monthly decimal.Decimal, now time.Time) []models.PaymentScheduleEntry {
	var entries []models.PaymentScheduleEntry
	for pair := 0; pair < layout.MaxPairs; pair++ {
		dateCell := strings.TrimSpace(cell(row, layout.PairsStartCol+2*pair))
		if dateCell == "" {
			continue
		}
		statusCell := cell(row, layout.PairsStartCol+2*pair+1)

		due := dateutils.ResolveAt(dateCell, now)
		status := n.Statuses.Resolve(statusCell)
		entry := models.PaymentScheduleEntry{
			DueDate: due,
			Amount:  monthly,
			Status:  status,
		}
		if status == models.StatusPaid {
			paid := due
			entry.PaidDate = &paid
		}
		entries = append(entries, entry)
	}
	return entries
}

// parseAmount applies the parse-or-zero policy: blank or unparseable
// amounts become zero. In strict mode an unparseable (non-blank) amount
// is an error that fails the row instead.
func (n *Normalizer) parseAmount(raw, field string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return decimal.Zero, nil
	}
	// Tolerate thousand separators and comma decimals from spreadsheets.
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	if strings.Contains(cleaned, ",") && !strings.Contains(cleaned, ".") {
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		if n.StrictNumbers {
			return decimal.Zero, fmt.Errorf("unparseable %s '%s'", field, raw)
		}
		return decimal.Zero, nil
	}
	return amount, nil
}

func cell(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return row[index]
}

func rowIsEmpty(row []string) bool {
	for _, value := range row {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}
