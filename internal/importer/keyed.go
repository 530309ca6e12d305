package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"akhmetov/rassrochka-crm/internal/dateutils"
	"akhmetov/rassrochka-crm/internal/logging"
	"akhmetov/rassrochka-crm/internal/models"
	"akhmetov/rassrochka-crm/internal/schedule"

	"github.com/shopspring/decimal"
)

// Keyed field names accepted by the JSON and delimited import paths.
const (
	fieldName           = "name"
	fieldProduct        = "product"
	fieldPurchaseAmount = "purchase_amount"
	fieldDebtAmount     = "debt_amount"
	fieldMonthlyPayment = "monthly_payment"
	fieldMonths         = "months"
	fieldStartDate      = "start_date"
	fieldAddress        = "client_address"
	fieldPhone          = "client_phone"
	fieldGuarantorName  = "guarantor_name"
	fieldGuarantorPhone = "guarantor_phone"
)

// NormalizeJSON extracts client records from a JSON array of keyed
// objects. A payload that is not a JSON array is a hard error; individual
// malformed elements are row errors.
func (n *Normalizer) NormalizeJSON(data []byte) (Result, error) {
	var rows []map[string]interface{}
	if err := json.Unmarshal(data, &rows); err != nil {
		return Result{}, fmt.Errorf("payload is not a JSON array of objects: %w", err)
	}

	result := Result{}
	for i, row := range rows {
		rowNum := i + 1
		client, rowErr := n.normalizeKeyed(row, rowNum)
		if rowErr != nil {
			n.Log.Warn("Skipping unusable record",
				logging.Field{Key: logging.FieldRow, Value: rowNum},
				logging.Field{Key: logging.FieldReason, Value: rowErr.Reason})
			result.RowErrors = append(result.RowErrors, *rowErr)
			continue
		}
		result.Records = append(result.Records, client)
	}

	n.Log.Info("Normalized JSON records",
		logging.Field{Key: logging.FieldCount, Value: len(result.Records)},
		logging.Field{Key: "skipped", Value: len(result.RowErrors)})
	return result, nil
}

// NormalizeDelimited extracts client records from delimited text: the
// first line is the header, remaining lines are data. Splitting is a
// plain comma split with no quoted-field handling, matching the format
// the source system produces.
func (n *Normalizer) NormalizeDelimited(r io.Reader) (Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Result{}, fmt.Errorf("error reading delimited input: %w", err)
	}

	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	var header []string
	result := Result{}
	rowNum := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		cells := strings.Split(line, ",")
		if header == nil {
			header = make([]string, len(cells))
			for i, h := range cells {
				header[i] = strings.ToLower(strings.TrimSpace(h))
			}
			continue
		}

		rowNum++
		values := make(map[string]interface{}, len(header))
		for i, key := range header {
			if i < len(cells) {
				values[key] = strings.TrimSpace(cells[i])
			}
		}
		client, rowErr := n.normalizeKeyed(values, rowNum)
		if rowErr != nil {
			n.Log.Warn("Skipping unusable row",
				logging.Field{Key: logging.FieldRow, Value: rowNum},
				logging.Field{Key: logging.FieldReason, Value: rowErr.Reason})
			result.RowErrors = append(result.RowErrors, *rowErr)
			continue
		}
		result.Records = append(result.Records, client)
	}

	if header == nil {
		return Result{}, fmt.Errorf("delimited input has no header line")
	}

	n.Log.Info("Normalized delimited rows",
		logging.Field{Key: logging.FieldCount, Value: len(result.Records)},
		logging.Field{Key: "skipped", Value: len(result.RowErrors)})
	return result, nil
}

// normalizeKeyed builds one client from keyed fields. Records imported
// this way carry no inline schedule, so one is generated from the
// purchase terms.
func (n *Normalizer) normalizeKeyed(values map[string]interface{}, rowNum int) (models.Client, *RowError) {
	name := strings.TrimSpace(stringValue(values[fieldName]))
	if name == "" {
		return models.Client{}, &RowError{Row: rowNum, Reason: "client name is missing"}
	}

	purchase, err := n.keyedAmount(values[fieldPurchaseAmount], fieldPurchaseAmount)
	if err != nil {
		return models.Client{}, &RowError{Row: rowNum, Reason: err.Error()}
	}
	debt, err := n.keyedAmount(values[fieldDebtAmount], fieldDebtAmount)
	if err != nil {
		return models.Client{}, &RowError{Row: rowNum, Reason: err.Error()}
	}
	monthly, err := n.keyedAmount(values[fieldMonthlyPayment], fieldMonthlyPayment)
	if err != nil {
		return models.Client{}, &RowError{Row: rowNum, Reason: err.Error()}
	}

	months := intValue(values[fieldMonths])
	if months < 1 {
		months = 12
	}

	now := n.Now()
	start := dateutils.ResolveAt(values[fieldStartDate], now)

	entries, genErr := schedule.Generate(start, monthly, months)
	if genErr != nil {
		return models.Client{}, &RowError{Row: rowNum, Reason: genErr.Error()}
	}

	client, buildErr := models.NewClientBuilder().
		WithName(name).
		WithProduct(strings.TrimSpace(stringValue(values[fieldProduct]))).
		WithPurchaseAmount(purchase).
		WithDebtAmount(debt).
		WithMonthlyPayment(monthly).
		WithStartDate(start).
		WithMonths(months).
		WithContact(strings.TrimSpace(stringValue(values[fieldAddress])), strings.TrimSpace(stringValue(values[fieldPhone]))).
		WithGuarantor(strings.TrimSpace(stringValue(values[fieldGuarantorName])), strings.TrimSpace(stringValue(values[fieldGuarantorPhone]))).
		WithSchedule(entries).
		Build()
	if buildErr != nil {
		return models.Client{}, &RowError{Row: rowNum, Reason: buildErr.Error()}
	}
	return client, nil
}

// keyedAmount applies the parse-or-zero policy to a keyed value that may
// arrive as a JSON number or a string.
func (n *Normalizer) keyedAmount(value interface{}, field string) (decimal.Decimal, error) {
	switch v := value.(type) {
	case nil:
		return decimal.Zero, nil
	case float64:
		return decimal.NewFromFloat(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case json.Number:
		return n.parseAmount(v.String(), field)
	case string:
		return n.parseAmount(v, field)
	default:
		return n.parseAmount(fmt.Sprintf("%v", v), field)
	}
}

func stringValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func intValue(value interface{}) int {
	switch v := value.(type) {
	case float64:
		return int(v)
	case int:
		return v
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return int(i)
		}
		return 0
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return i
		}
		return 0
	default:
		return 0
	}
}
