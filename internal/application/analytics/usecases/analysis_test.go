package usecases

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/tradesift-io/tradesift/internal/application/entitlement"
	"github.com/tradesift-io/tradesift/internal/domain/shipment"
	apperrors "github.com/tradesift-io/tradesift/internal/shared/errors"
	"github.com/tradesift-io/tradesift/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type fakeAnalyticsRepo struct {
	total       int64
	cardinality shipment.Cardinality
	breakdowns  map[shipment.Dimension][]shipment.BreakdownEntry
	queried     bool
}

func (f *fakeAnalyticsRepo) Search(context.Context, shipment.Direction, shipment.Predicate, int, int) ([]shipment.Record, error) {
	return nil, nil
}

func (f *fakeAnalyticsRepo) Count(context.Context, shipment.Direction, shipment.Predicate) (int64, error) {
	f.queried = true
	return f.total, nil
}

func (f *fakeAnalyticsRepo) DistinctCounts(context.Context, shipment.Direction, shipment.Predicate) (*shipment.Cardinality, error) {
	f.queried = true
	card := f.cardinality
	return &card, nil
}

func (f *fakeAnalyticsRepo) Breakdown(_ context.Context, _ shipment.Direction, _ shipment.Predicate, dim shipment.Dimension, _ shipment.Metric) ([]shipment.BreakdownEntry, error) {
	f.queried = true
	return f.breakdowns[dim], nil
}

func (f *fakeAnalyticsRepo) BulkInsert(context.Context, shipment.Direction, []shipment.Record) error {
	return nil
}

func analyticsQuery() shipment.SearchQuery {
	return shipment.SearchQuery{
		HSCode:    "3002",
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestAnalysisRejectsRestrictedAccess(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	sort := NewSortAnalysisUseCase(repo, testLogger())
	detail := NewDetailAnalysisUseCase(repo, testLogger())

	_, err := sort.Execute(context.Background(), shipment.DirectionExport, analyticsQuery(), entitlement.AccessRestricted)
	appErr := apperrors.GetAppError(err)
	if appErr == nil || appErr.Message != "Invalid Subscription" {
		t.Errorf("sort analysis error = %v, want Invalid Subscription", err)
	}

	_, err = detail.Execute(context.Background(), shipment.DirectionExport, analyticsQuery(), shipment.MetricRecordCount, entitlement.AccessRestricted)
	appErr = apperrors.GetAppError(err)
	if appErr == nil || appErr.Message != "Invalid Subscription" {
		t.Errorf("detail analysis error = %v, want Invalid Subscription", err)
	}

	if repo.queried {
		t.Error("restricted caller must be rejected before any storage query")
	}
}

func TestSortAnalysisAggregates(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		total: 120,
		cardinality: shipment.Cardinality{
			Countries:        4,
			Buyers:           17,
			Suppliers:        9,
			OriginPorts:      3,
			DestinationPorts: 6,
		},
	}
	uc := NewSortAnalysisUseCase(repo, testLogger())

	resp, err := uc.Execute(context.Background(), shipment.DirectionExport, analyticsQuery(), entitlement.AccessFull)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if resp.TotalRecords != 120 {
		t.Errorf("TotalRecords = %d, want 120", resp.TotalRecords)
	}
	if resp.Countries != 4 || resp.Buyers != 17 || resp.Suppliers != 9 {
		t.Errorf("cardinalities = %+v", resp)
	}
	if resp.OriginPorts != 3 || resp.DestinationPorts != 6 {
		t.Errorf("port cardinalities = %+v", resp)
	}
}

func TestDetailAnalysisFillsEveryDimension(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		breakdowns: map[shipment.Dimension][]shipment.BreakdownEntry{
			shipment.DimensionCountry: {
				{Value: "Germany", Metric: 5},
				{Value: "Brazil", Metric: 3},
			},
			shipment.DimensionBuyer:           {{Value: "Acme GmbH", Metric: 8}},
			shipment.DimensionSupplier:        {{Value: "Indo Pharma", Metric: 8}},
			shipment.DimensionOriginPort:      {{Value: "INMAA", Metric: 6}},
			shipment.DimensionDestinationPort: {{Value: "DEHAM", Metric: 5}},
		},
	}
	uc := NewDetailAnalysisUseCase(repo, testLogger())

	resp, err := uc.Execute(context.Background(), shipment.DirectionExport, analyticsQuery(), shipment.MetricRecordCount, entitlement.AccessFull)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if len(resp.Countries) != 2 || resp.Countries[0].Value != "Germany" || resp.Countries[1].Value != "Brazil" {
		t.Errorf("countries = %+v, want descending repo order preserved", resp.Countries)
	}
	if len(resp.Buyers) != 1 || len(resp.Suppliers) != 1 {
		t.Errorf("buyers/suppliers missing: %+v", resp)
	}
	if len(resp.OriginPorts) != 1 || len(resp.DestinationPorts) != 1 {
		t.Errorf("port breakdowns missing: %+v", resp)
	}
	if resp.Metric != shipment.MetricRecordCount {
		t.Errorf("Metric = %q, want %q", resp.Metric, shipment.MetricRecordCount)
	}
}
