// Package importcmd handles the import command: normalize a raw payload,
// persist the records and report the batch outcome.
package importcmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"akhmetov/rassrochka-crm/cmd/root"
	"akhmetov/rassrochka-crm/internal/analytics"
	"akhmetov/rassrochka-crm/internal/importer"
	"akhmetov/rassrochka-crm/internal/logging"
	"akhmetov/rassrochka-crm/internal/report"
	"akhmetov/rassrochka-crm/internal/statusutils"
	"akhmetov/rassrochka-crm/internal/store"

	"github.com/spf13/cobra"
)

var (
	positional   bool
	capitalID    string
	exportFile   string
	showAnalytic bool
)

// Cmd represents the import command.
var Cmd = &cobra.Command{
	Use:   "import",
	Short: "Import clients from a JSON, delimited or positional-spreadsheet file",
	Long: `Import normalizes a raw payload into client records with payment
schedules and persists them record by record. Rows that cannot yield a
minimally valid record are skipped and reported; one bad row never aborts
the batch.

Example:
  rassrochka import -i clients.json --capital main
  rassrochka import -i export.csv --positional --export normalized.csv`,
	Run: importFunc,
}

func init() {
	Cmd.Flags().BoolVar(&positional, "positional", false, "Treat input as the positional spreadsheet layout")
	Cmd.Flags().StringVar(&capitalID, "capital", "default", "Capital the imported clients belong to")
	Cmd.Flags().StringVar(&exportFile, "export", "", "Write normalized records to this file (.csv or .json)")
	Cmd.Flags().BoolVar(&showAnalytic, "analytics", false, "Print capital analytics after the import")
}

func importFunc(cmd *cobra.Command, args []string) {
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

	normalizer := importer.NewNormalizer(logger)
	normalizer.StrictNumbers = root.Cfg.Import.StrictNumbers
	if rules, err := store.NewStatusStore(root.Cfg.Data.StatusesFile, logger).LoadSynonyms(); err != nil {
		logger.WithError(err).Warn("Failed to load status synonyms, using built-in table")
	} else if resolver, err := statusutils.NewResolverWithRules(rules); err != nil {
		logger.WithError(err).Warn("Invalid status synonym table, using built-in table")
	} else {
		normalizer.Statuses = resolver
	}

	normalized, err := normalize(normalizer, data)
	if err != nil {
		logger.WithError(err).Fatal("Failed to normalize input",
			logging.Field{Key: logging.FieldFile, Value: input})
	}

	memStore := store.NewMemoryStore()
	bulk := importer.NewBulkImporter(memStore, logger, root.Cfg.Import.MaxRowErrors)
	persisted, err := bulk.Import(cmd.Context(), capitalID, normalized.Records)
	if err != nil {
		logger.WithError(err).Warn("Bulk import stopped early")
	}

	fmt.Print(report.BuildSummary(normalized, persisted))

	if exportFile != "" {
		if err := exportRecords(normalized, exportFile, logger); err != nil {
			logger.WithError(err).Fatal("Failed to export normalized records",
				logging.Field{Key: logging.FieldOutputFile, Value: exportFile})
		}
	}

	if showAnalytic {
		clients, err := memStore.ListByCapital(cmd.Context(), capitalID)
		if err != nil {
			logger.WithError(err).Fatal("Failed to list imported clients")
		}
		expenses, err := memStore.Expenses().ListByCapital(cmd.Context(), capitalID)
		if err != nil {
			logger.WithError(err).Fatal("Failed to list expenses")
		}
		fmt.Print(report.RenderMetrics(analytics.Aggregate(clients, expenses)))
	}
}

// normalize picks the input shape: the positional flag forces the
// spreadsheet layout; otherwise a payload starting with '[' is a JSON
// array and anything else is header-plus-rows delimited text.
func normalize(n *importer.Normalizer, data []byte) (importer.Result, error) {
	if positional {
		layout := importer.DefaultLayout()
		layout.MaxPairs = root.Cfg.Import.MaxSchedulePairs
		return n.NormalizeRows(splitRows(data), layout)
	}
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) {
		return n.NormalizeJSON(data)
	}
	return n.NormalizeDelimited(bytes.NewReader(data))
}

// splitRows turns a positional export into rows of cells. The split is a
// plain comma split: the vendor export never quotes fields.
func splitRows(data []byte) [][]string {
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	var rows [][]string
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, strings.Split(line, ","))
	}
	return rows
}

func exportRecords(normalized importer.Result, path string, logger logging.Logger) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return report.WriteClientsJSON(normalized.Records, path, logger)
	default:
		return report.WriteClientsCSV(normalized.Records, path, logger)
	}
}
