// Package report renders import outcomes for callers: a human-readable
// batch summary and CSV/JSON exports of normalized client records.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"akhmetov/rassrochka-crm/internal/dateutils"
	"akhmetov/rassrochka-crm/internal/importer"
	"akhmetov/rassrochka-crm/internal/logging"
	"akhmetov/rassrochka-crm/internal/models"

	"github.com/gocarina/gocsv"
)

// BuildSummary renders the caller-facing outcome of one import run:
// normalization and persistence counts plus a bounded list of reasons for
// the failures, never a full error dump.
func BuildSummary(normalized importer.Result, persisted importer.BulkResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Import batch %s\n", persisted.BatchID)
	fmt.Fprintf(&b, "  normalized records: %d\n", len(normalized.Records))
	fmt.Fprintf(&b, "  skipped rows:       %d\n", len(normalized.RowErrors))
	fmt.Fprintf(&b, "  persisted:          %d\n", persisted.Succeeded)
	fmt.Fprintf(&b, "  failed to persist:  %d\n", persisted.Failed)

	if len(normalized.RowErrors) > 0 {
		b.WriteString("Skipped rows:\n")
		for _, rowErr := range normalized.RowErrors {
			fmt.Fprintf(&b, "  - %s\n", rowErr.Error())
		}
	}
	if len(persisted.Reasons) > 0 {
		b.WriteString("Persistence failures:\n")
		for _, reason := range persisted.Reasons {
			fmt.Fprintf(&b, "  - %s\n", reason)
		}
		if persisted.Failed > len(persisted.Reasons) {
			fmt.Fprintf(&b, "  ... and %d more\n", persisted.Failed-len(persisted.Reasons))
		}
	}

	return b.String()
}

// clientCSVRow is the flat CSV projection of a normalized client.
type clientCSVRow struct {
	Name           string `csv:"name"`
	Product        string `csv:"product"`
	PurchaseAmount string `csv:"purchase_amount"`
	DebtAmount     string `csv:"debt_amount"`
	MonthlyPayment string `csv:"monthly_payment"`
	StartDate      string `csv:"start_date"`
	Months         int    `csv:"months"`
	Address        string `csv:"client_address"`
	Phone          string `csv:"client_phone"`
	GuarantorName  string `csv:"guarantor_name"`
	GuarantorPhone string `csv:"guarantor_phone"`
	PaidPayments   int    `csv:"paid_payments"`
	TotalPayments  int    `csv:"total_payments"`
}

// WriteClientsCSV writes normalized clients to a CSV file. The schedule is
// summarized into paid/total counts; full schedules go through the JSON
// export.
func WriteClientsCSV(clients []models.Client, csvFile string, logger logging.Logger) error {
	if logger == nil {
		logger = logging.NewLogrusAdapterFromLogger(nil)
	}
	if len(clients) == 0 {
		return fmt.Errorf("no clients to write")
	}

	logger.Info("Writing clients to CSV file",
		logging.Field{Key: logging.FieldOutputFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(clients)})

	rows := make([]clientCSVRow, 0, len(clients))
	for _, client := range clients {
		paid := 0
		for _, entry := range client.Schedule {
			if entry.IsPaid() {
				paid++
			}
		}
		rows = append(rows, clientCSVRow{
			Name:           client.Name,
			Product:        client.Product,
			PurchaseAmount: client.PurchaseAmount.StringFixed(2),
			DebtAmount:     client.DebtAmount.StringFixed(2),
			MonthlyPayment: client.MonthlyPayment.StringFixed(2),
			StartDate:      dateutils.ToISODate(client.StartDate),
			Months:         client.Months,
			Address:        client.Address,
			Phone:          client.Phone,
			GuarantorName:  client.GuarantorName,
			GuarantorPhone: client.GuarantorPhone,
			PaidPayments:   paid,
			TotalPayments:  len(client.Schedule),
		})
	}

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile) // #nosec G304 -- CLI tool writes user-provided output paths
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("error writing CSV file: %w", err)
	}
	return nil
}

// WriteClientsJSON writes normalized clients, schedules included, as
// indented JSON.
func WriteClientsJSON(clients []models.Client, jsonFile string, logger logging.Logger) error {
	if logger == nil {
		logger = logging.NewLogrusAdapterFromLogger(nil)
	}

	logger.Info("Writing clients to JSON file",
		logging.Field{Key: logging.FieldOutputFile, Value: jsonFile},
		logging.Field{Key: logging.FieldCount, Value: len(clients)})

	data, err := json.MarshalIndent(clients, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling clients: %w", err)
	}

	dir := filepath.Dir(jsonFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}
	if err := os.WriteFile(jsonFile, data, 0600); err != nil {
		return fmt.Errorf("error writing JSON file: %w", err)
	}
	return nil
}
