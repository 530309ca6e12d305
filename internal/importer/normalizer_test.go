package importer

import (
	"testing"
	"time"

	"akhmetov/rassrochka-crm/internal/importerror"
	"akhmetov/rassrochka-crm/internal/logging"
	"akhmetov/rassrochka-crm/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testNormalizer() *Normalizer {
	n := NewNormalizer(&logging.MockLogger{})
	n.Now = func() time.Time { return date(2025, time.June, 15) }
	return n
}

// makeRow builds a row wide enough for the default layout with the given
// cells set.
func makeRow(cells map[int]string) []string {
	row := make([]string, 59)
	for index, value := range cells {
		row[index] = value
	}
	return row
}

func TestNormalizeRowsFullRecord(t *testing.T) {
	row := makeRow(map[int]string{
		0:  "1",
		1:  "Ivanov",
		2:  "120000",
		3:  "120000",
		4:  "10000",
		5:  "2024-12-01",
		6:  "2025-12-01",
		7:  "2024-12-01",
		8:  "Оплачен",
		9:  "2025-01-01",
		10: "",
		55: "Petrova",
		56: "Moscow",
		57: "+79990000000",
		58: "+79980000000",
	})

	result, err := testNormalizer().NormalizeRows([][]string{row}, DefaultLayout())
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Empty(t, result.RowErrors)

	client := result.Records[0]
	assert.Equal(t, "Ivanov", client.Name)
	assert.Equal(t, "120000", client.PurchaseAmount.String())
	assert.Equal(t, "120000", client.DebtAmount.String())
	assert.Equal(t, "10000", client.MonthlyPayment.String())
	assert.Equal(t, date(2024, time.December, 1), client.StartDate)
	assert.Equal(t, "Petrova", client.GuarantorName)
	assert.Equal(t, "Moscow", client.Address)
	assert.Equal(t, "+79990000000", client.Phone)
	assert.Equal(t, "+79980000000", client.GuarantorPhone)

	require.Len(t, client.Schedule, 2)
	first := client.Schedule[0]
	assert.Equal(t, date(2024, time.December, 1), first.DueDate)
	assert.Equal(t, models.StatusPaid, first.Status)
	require.NotNil(t, first.PaidDate)
	assert.Equal(t, date(2024, time.December, 1), *first.PaidDate)

	second := client.Schedule[1]
	assert.Equal(t, date(2025, time.January, 1), second.DueDate)
	assert.Equal(t, models.StatusPending, second.Status)
	assert.Nil(t, second.PaidDate)

	// Months default to the extracted schedule length.
	assert.Equal(t, 2, client.Months)
}

func TestNormalizeRowsSkipsBadRows(t *testing.T) {
	rows := [][]string{
		makeRow(map[int]string{1: "Ivanov", 4: "5000", 7: "2024-12-01"}),
		make([]string, 59), // all empty
		makeRow(map[int]string{2: "120000"}), // no name
		makeRow(map[int]string{1: "Sidorova", 4: "3000", 7: "2025-01-01"}),
	}

	result, err := testNormalizer().NormalizeRows(rows, DefaultLayout())
	require.NoError(t, err)

	require.Len(t, result.Records, 2)
	assert.Equal(t, "Ivanov", result.Records[0].Name)
	assert.Equal(t, "Sidorova", result.Records[1].Name)

	require.Len(t, result.RowErrors, 2)
	assert.Equal(t, 2, result.RowErrors[0].Row)
	assert.Contains(t, result.RowErrors[0].Reason, "empty")
	assert.Equal(t, 3, result.RowErrors[1].Row)
	assert.Contains(t, result.RowErrors[1].Reason, "name")
}

func TestNormalizeRowsParseOrZero(t *testing.T) {
	row := makeRow(map[int]string{
		1: "Ivanov",
		2: "abc",
		3: "",
		4: "n/a",
		7: "2024-12-01",
	})

	result, err := testNormalizer().NormalizeRows([][]string{row}, DefaultLayout())
	require.NoError(t, err)
	require.Len(t, result.Records, 1)

	client := result.Records[0]
	assert.True(t, client.PurchaseAmount.IsZero())
	assert.True(t, client.DebtAmount.IsZero())
	assert.True(t, client.MonthlyPayment.IsZero())
}

func TestNormalizeRowsStrictNumbers(t *testing.T) {
	n := testNormalizer()
	n.StrictNumbers = true

	rows := [][]string{
		makeRow(map[int]string{1: "Ivanov", 2: "abc"}),
		makeRow(map[int]string{1: "Sidorova", 2: "120000", 4: "10000", 7: "2024-12-01"}),
	}

	result, err := n.NormalizeRows(rows, DefaultLayout())
	require.NoError(t, err)

	require.Len(t, result.Records, 1)
	assert.Equal(t, "Sidorova", result.Records[0].Name)
	require.Len(t, result.RowErrors, 1)
	assert.Equal(t, 1, result.RowErrors[0].Row)
	assert.Contains(t, result.RowErrors[0].Reason, "purchase_amount")
}

func TestNormalizeRowsSpreadsheetFormats(t *testing.T) {
	// Serial dates and comma decimals, as raw spreadsheet exports carry.
	row := makeRow(map[int]string{
		1: "Ivanov",
		2: "120 000,50",
		4: "10000",
		5: "45292", // 2024-01-01
		7: "45658", // 2025-01-01
		8: "просрочен",
	})

	result, err := testNormalizer().NormalizeRows([][]string{row}, DefaultLayout())
	require.NoError(t, err)
	require.Len(t, result.Records, 1)

	client := result.Records[0]
	assert.Equal(t, "120000.5", client.PurchaseAmount.String())
	assert.Equal(t, date(2024, time.January, 1), client.StartDate)
	require.Len(t, client.Schedule, 1)
	assert.Equal(t, date(2025, time.January, 1), client.Schedule[0].DueDate)
	assert.Equal(t, models.StatusOverdue, client.Schedule[0].Status)
	assert.Nil(t, client.Schedule[0].PaidDate)
}

func TestNormalizeRowsShortRow(t *testing.T) {
	// Rows narrower than the layout must not panic; missing cells are
	// treated as empty.
	row := []string{"1", "Ivanov", "120000"}

	result, err := testNormalizer().NormalizeRows([][]string{row}, DefaultLayout())
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Empty(t, result.Records[0].Schedule)
	assert.Equal(t, 12, result.Records[0].Months)
}

func TestNormalizeRowsRejectsBadLayout(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Layout)
	}{
		{"Negative column", func(l *Layout) { l.NameCol = -1 }},
		{"Zero pairs", func(l *Layout) { l.MaxPairs = 0 }},
		{"Pairs overlap trailing columns", func(l *Layout) { l.MaxPairs = 30 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			layout := DefaultLayout()
			tc.mutate(&layout)

			_, err := testNormalizer().NormalizeRows(nil, layout)
			require.Error(t, err)

			var layoutErr *importerror.LayoutError
			assert.ErrorAs(t, err, &layoutErr)
		})
	}
}

func TestDefaultLayoutIsValid(t *testing.T) {
	assert.NoError(t, DefaultLayout().Validate())
}
