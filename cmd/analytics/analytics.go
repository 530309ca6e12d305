// Package analytics handles the analytics command: aggregate a capital's
// clients and expenses into portfolio metrics.
package analytics

import (
	"encoding/json"
	"fmt"
	"os"

	"akhmetov/rassrochka-crm/cmd/root"
	"akhmetov/rassrochka-crm/internal/analytics"
	"akhmetov/rassrochka-crm/internal/logging"
	"akhmetov/rassrochka-crm/internal/models"
	"akhmetov/rassrochka-crm/internal/report"

	"github.com/spf13/cobra"
)

var expensesFile string

// Cmd represents the analytics command.
var Cmd = &cobra.Command{
	Use:   "analytics",
	Short: "Aggregate capital metrics from clients and expenses",
	Long: `Analytics reads clients (and optionally expenses) from JSON files and
prints the capital's aggregate metrics: totals, collection and completion
rates, active and completed client counts, and net profit.

Example:
  rassrochka analytics -i clients.json --expenses expenses.json`,
	Run: analyticsFunc,
}

func init() {
	Cmd.Flags().StringVar(&expensesFile, "expenses", "", "JSON file with the capital's expenses")
}

func analyticsFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()

	input := root.SharedFlags.Input
	if input == "" {
		logger.Fatal("Input file must be specified")
	}

	data, err := os.ReadFile(input) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		logger.WithError(err).Fatal("Failed to read input file",
			logging.Field{Key: logging.FieldFile, Value: input})
	}

	var clients []models.Client
	if err := json.Unmarshal(data, &clients); err != nil {
		logger.WithError(err).Fatal("Input is not a JSON array of clients")
	}

	var expenses []models.Expense
	if expensesFile != "" {
		expenseData, err := os.ReadFile(expensesFile) // #nosec G304 -- CLI tool requires user-provided file paths
		if err != nil {
			logger.WithError(err).Fatal("Failed to read expenses file",
				logging.Field{Key: logging.FieldFile, Value: expensesFile})
		}
		if err := json.Unmarshal(expenseData, &expenses); err != nil {
			logger.WithError(err).Fatal("Expenses file is not a JSON array of expenses")
		}
	}

	fmt.Print(report.RenderMetrics(analytics.Aggregate(clients, expenses)))
}
