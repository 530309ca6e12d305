package importer

import (
	"context"

	"akhmetov/rassrochka-crm/internal/importerror"
	"akhmetov/rassrochka-crm/internal/logging"
	"akhmetov/rassrochka-crm/internal/models"
	"akhmetov/rassrochka-crm/internal/store"

	"github.com/google/uuid"
)

// DefaultMaxReasons bounds the failure-reason list reported per batch.
const DefaultMaxReasons = 20

// BulkResult is the per-batch tally callers receive after a bulk import:
// counts of succeeded and failed records plus a bounded list of
// human-readable failure reasons, never a single aggregate boolean.
type BulkResult struct {
	BatchID   string   `json:"batch_id"`
	Succeeded int      `json:"succeeded"`
	Failed    int      `json:"failed"`
	Reasons   []string `json:"reasons,omitempty"`
}

// BulkImporter persists normalized records into a client store one at a
// time. Records are isolated from each other: one record's persistence
// failure is tallied and the batch continues.
type BulkImporter struct {
	clients    store.ClientStore
	log        logging.Logger
	maxReasons int
}

// NewBulkImporter creates a BulkImporter. maxReasons bounds the reason
// list in the result; values below one fall back to DefaultMaxReasons.
func NewBulkImporter(clients store.ClientStore, logger logging.Logger, maxReasons int) *BulkImporter {
	if logger == nil {
		logger = logging.NewLogrusAdapterFromLogger(nil)
	}
	if maxReasons < 1 {
		maxReasons = DefaultMaxReasons
	}
	return &BulkImporter{
		clients:    clients,
		log:        logger,
		maxReasons: maxReasons,
	}
}

// Import persists records sequentially under the given capital.
// Cancellation is checkpointed before each record, so an aborted batch
// never leaves a partially persisted record behind; the tally accumulated
// so far is returned alongside the context error.
func (b *BulkImporter) Import(ctx context.Context, capitalID string, records []models.Client) (BulkResult, error) {
	result := BulkResult{BatchID: uuid.New().String()}
	log := b.log.WithField(logging.FieldBatch, result.BatchID)

	log.Info("Starting bulk import",
		logging.Field{Key: logging.FieldCapital, Value: capitalID},
		logging.Field{Key: logging.FieldCount, Value: len(records)})

	for _, record := range records {
		if err := ctx.Err(); err != nil {
			log.Warn("Bulk import cancelled",
				logging.Field{Key: "persisted", Value: result.Succeeded})
			return result, err
		}

		record.CapitalID = capitalID
		if _, err := b.clients.Create(ctx, record); err != nil {
			storeErr := &importerror.StoreError{Op: "create client", Record: record.Name, Err: err}
			log.WithError(err).Warn("Failed to persist record, continuing",
				logging.Field{Key: logging.FieldClient, Value: record.Name})
			result.Failed++
			if len(result.Reasons) < b.maxReasons {
				result.Reasons = append(result.Reasons, storeErr.Error())
			}
			continue
		}
		result.Succeeded++
	}

	log.Info("Bulk import finished",
		logging.Field{Key: "succeeded", Value: result.Succeeded},
		logging.Field{Key: "failed", Value: result.Failed})
	return result, nil
}
