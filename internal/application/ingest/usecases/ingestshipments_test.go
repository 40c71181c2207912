package usecases

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/tradesift-io/tradesift/internal/domain/shipment"
	"github.com/tradesift-io/tradesift/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type batchRecordingRepo struct {
	batches   [][]shipment.Record
	failBatch int
}

func (r *batchRecordingRepo) Search(context.Context, shipment.Direction, shipment.Predicate, int, int) ([]shipment.Record, error) {
	return nil, nil
}

func (r *batchRecordingRepo) Count(context.Context, shipment.Direction, shipment.Predicate) (int64, error) {
	return 0, nil
}

func (r *batchRecordingRepo) DistinctCounts(context.Context, shipment.Direction, shipment.Predicate) (*shipment.Cardinality, error) {
	return nil, nil
}

func (r *batchRecordingRepo) Breakdown(context.Context, shipment.Direction, shipment.Predicate, shipment.Dimension, shipment.Metric) ([]shipment.BreakdownEntry, error) {
	return nil, nil
}

func (r *batchRecordingRepo) BulkInsert(_ context.Context, _ shipment.Direction, records []shipment.Record) error {
	r.batches = append(r.batches, records)
	if len(r.batches) == r.failBatch {
		return errors.New("duplicate key")
	}
	return nil
}

func TestIngestSplitsIntoBatches(t *testing.T) {
	repo := &batchRecordingRepo{}
	uc := NewIngestShipmentsUseCase(repo, 10, 0, testLogger())

	records := make([]shipment.Record, 25)
	report, err := uc.Execute(context.Background(), shipment.DirectionImport, records)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if len(repo.batches) != 3 {
		t.Fatalf("batches = %d, want 3", len(repo.batches))
	}
	wantSizes := []int{10, 10, 5}
	for i, want := range wantSizes {
		if len(repo.batches[i]) != want {
			t.Errorf("batch %d size = %d, want %d", i, len(repo.batches[i]), want)
		}
	}
	if report.Inserted != 25 || report.FailedBatches != 0 {
		t.Errorf("report = %+v, want 25 inserted, 0 failed", report)
	}
}

func TestIngestSkipsFailedBatchAndContinues(t *testing.T) {
	repo := &batchRecordingRepo{failBatch: 2}
	uc := NewIngestShipmentsUseCase(repo, 10, 0, testLogger())

	records := make([]shipment.Record, 30)
	report, err := uc.Execute(context.Background(), shipment.DirectionExport, records)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if len(repo.batches) != 3 {
		t.Errorf("batches attempted = %d, want 3", len(repo.batches))
	}
	if report.Inserted != 20 {
		t.Errorf("Inserted = %d, want 20", report.Inserted)
	}
	if report.FailedBatches != 1 {
		t.Errorf("FailedBatches = %d, want 1", report.FailedBatches)
	}
}

func TestIngestEmptyInput(t *testing.T) {
	repo := &batchRecordingRepo{}
	uc := NewIngestShipmentsUseCase(repo, 10000, 0, testLogger())

	report, err := uc.Execute(context.Background(), shipment.DirectionExport, nil)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(repo.batches) != 0 {
		t.Errorf("batches = %d, want 0", len(repo.batches))
	}
	if report.TotalRecords != 0 || report.Inserted != 0 {
		t.Errorf("report = %+v, want zeroes", report)
	}
}

func TestIngestStopsOnCancelledContext(t *testing.T) {
	repo := &batchRecordingRepo{}
	uc := NewIngestShipmentsUseCase(repo, 10, time.Minute, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	records := make([]shipment.Record, 30)
	report, err := uc.Execute(ctx, shipment.DirectionExport, records)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if report.Inserted != 10 {
		t.Errorf("Inserted = %d, want 10 before cancellation", report.Inserted)
	}
}
