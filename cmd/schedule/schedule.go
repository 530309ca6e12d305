// Package schedule handles the schedule command: generate an amortized
// payment schedule from purchase terms.
package schedule

import (
	"fmt"
	"time"

	"akhmetov/rassrochka-crm/cmd/root"
	"akhmetov/rassrochka-crm/internal/dateutils"
	"akhmetov/rassrochka-crm/internal/schedule"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	startDate string
	monthly   string
	months    int
)

// Cmd represents the schedule command.
var Cmd = &cobra.Command{
	Use:   "schedule",
	Short: "Generate a monthly payment schedule from purchase terms",
	Long: `Generate produces one pending entry per month starting at the start
date, stepping by calendar months and clamping to shorter months.

Example:
  rassrochka schedule --start 2024-12-01 --monthly 10000 --months 12`,
	Run: scheduleFunc,
}

func init() {
	Cmd.Flags().StringVar(&startDate, "start", "", "Start date (defaults to today)")
	Cmd.Flags().StringVar(&monthly, "monthly", "", "Monthly payment amount")
	Cmd.Flags().IntVar(&months, "months", 12, "Term length in months")
}

func scheduleFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()

	amount, err := decimal.NewFromString(monthly)
	if err != nil {
		logger.WithError(err).Fatal("Invalid monthly amount")
	}

	start := time.Now()
	if startDate != "" {
		start = dateutils.Resolve(startDate)
	}

	entries, err := schedule.Generate(start, amount, months)
	if err != nil {
		logger.WithError(err).Fatal("Failed to generate schedule")
	}

	for i, entry := range entries {
		fmt.Printf("%2d  %s  %s  %s\n",
			i+1, dateutils.ToISODate(entry.DueDate), entry.Amount.StringFixed(2), entry.Status)
	}
}
