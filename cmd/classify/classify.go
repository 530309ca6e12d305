// Package classify handles the classify command: compute the effective
// display state of every scheduled payment relative to a reference date.
package classify

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"akhmetov/rassrochka-crm/cmd/root"
	"akhmetov/rassrochka-crm/internal/dateutils"
	"akhmetov/rassrochka-crm/internal/logging"
	"akhmetov/rassrochka-crm/internal/models"
	"akhmetov/rassrochka-crm/internal/schedule"

	"github.com/spf13/cobra"
)

var today string

// Cmd represents the classify command.
var Cmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify scheduled payments against a reference date",
	Long: `Classify reads clients with schedules from a JSON file and prints the
effective state of each entry. Stored statuses are never modified; the
reference date is always explicit.

Example:
  rassrochka classify -i clients.json --today 2024-03-01`,
	Run: classifyFunc,
}

func init() {
	Cmd.Flags().StringVar(&today, "today", "", "Reference date (defaults to the current date)")
}

func classifyFunc(cmd *cobra.Command, args []string) {
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

	reference := time.Now()
	if today != "" {
		reference = dateutils.Resolve(today)
	}

	for _, client := range clients {
		fmt.Printf("%s (%d payments)\n", client.Name, len(client.Schedule))
		for i, entry := range client.Schedule {
			state := schedule.Classify(entry, reference)
			fmt.Printf("  %2d  %s  %s  %s\n",
				i+1, dateutils.ToISODate(entry.DueDate), entry.Amount.StringFixed(2), state)
		}
	}
}
