package usecases

import (
	"context"
	"time"

	"github.com/tradesift-io/tradesift/internal/domain/shipment"
	"github.com/tradesift-io/tradesift/internal/shared/logger"
)

// IngestReport summarizes one bulk ingestion run.
type IngestReport struct {
	TotalRecords  int `json:"total_records"`
	Inserted      int `json:"inserted"`
	FailedBatches int `json:"failed_batches"`
}

// IngestShipmentsUseCase loads parsed records into storage in fixed-size
// batches, pausing between batches to keep bulk loads from starving
// interactive queries.
type IngestShipmentsUseCase struct {
	repo       shipment.Repository
	batchSize  int
	batchPause time.Duration
	logger     logger.Interface
}

func NewIngestShipmentsUseCase(
	repo shipment.Repository,
	batchSize int,
	batchPause time.Duration,
	logger logger.Interface,
) *IngestShipmentsUseCase {
	if batchSize < 1 {
		batchSize = 10000
	}
	return &IngestShipmentsUseCase{
		repo:       repo,
		batchSize:  batchSize,
		batchPause: batchPause,
		logger:     logger,
	}
}

// Execute inserts the records batch by batch. A failed batch is logged
// and skipped; the run continues with the next batch so one bad chunk
// cannot abort a multi-million-row load. Context cancellation stops the
// run between batches.
func (uc *IngestShipmentsUseCase) Execute(
	ctx context.Context,
	direction shipment.Direction,
	records []shipment.Record,
) (*IngestReport, error) {
	report := &IngestReport{TotalRecords: len(records)}

	for start := 0; start < len(records); start += uc.batchSize {
		if start > 0 && uc.batchPause > 0 {
			select {
			case <-ctx.Done():
				return report, ctx.Err()
			case <-time.After(uc.batchPause):
			}
		}

		end := start + uc.batchSize
		if end > len(records) {
			end = len(records)
		}
		batch := records[start:end]

		if err := uc.repo.BulkInsert(ctx, direction, batch); err != nil {
			uc.logger.Errorw("failed to insert ingestion batch",
				"direction", direction,
				"batch_start", start,
				"batch_size", len(batch),
				"error", err,
			)
			report.FailedBatches++
			continue
		}
		report.Inserted += len(batch)
	}

	uc.logger.Infow("ingestion run finished",
		"direction", direction,
		"total_records", report.TotalRecords,
		"inserted", report.Inserted,
		"failed_batches", report.FailedBatches,
	)
	return report, nil
}
