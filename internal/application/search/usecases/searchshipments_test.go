package usecases

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/tradesift-io/tradesift/internal/application/entitlement"
	"github.com/tradesift-io/tradesift/internal/application/search/dto"
	"github.com/tradesift-io/tradesift/internal/domain/customer"
	"github.com/tradesift-io/tradesift/internal/domain/shipment"
	apperrors "github.com/tradesift-io/tradesift/internal/shared/errors"
	"github.com/tradesift-io/tradesift/internal/shared/logger"
	"github.com/tradesift-io/tradesift/internal/shared/utils"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type fakeShipmentRepo struct {
	records  []shipment.Record
	countErr error
}

func (f *fakeShipmentRepo) Search(_ context.Context, _ shipment.Direction, _ shipment.Predicate, offset, limit int) ([]shipment.Record, error) {
	if offset >= len(f.records) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.records) {
		end = len(f.records)
	}
	return f.records[offset:end], nil
}

func (f *fakeShipmentRepo) Count(_ context.Context, _ shipment.Direction, _ shipment.Predicate) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return int64(len(f.records)), nil
}

func (f *fakeShipmentRepo) DistinctCounts(context.Context, shipment.Direction, shipment.Predicate) (*shipment.Cardinality, error) {
	return &shipment.Cardinality{}, nil
}

func (f *fakeShipmentRepo) Breakdown(context.Context, shipment.Direction, shipment.Predicate, shipment.Dimension, shipment.Metric) ([]shipment.BreakdownEntry, error) {
	return nil, nil
}

func (f *fakeShipmentRepo) BulkInsert(_ context.Context, _ shipment.Direction, records []shipment.Record) error {
	f.records = append(f.records, records...)
	return nil
}

type quotaCall struct {
	id        uint
	direction shipment.Direction
	amount    int
}

type fakeCustomerRepo struct {
	quotaErr   error
	quotaCalls []quotaCall
}

func (f *fakeCustomerRepo) Create(context.Context, *customer.Customer) error { return nil }
func (f *fakeCustomerRepo) Update(context.Context, *customer.Customer) error { return nil }
func (f *fakeCustomerRepo) GetByID(context.Context, uint) (*customer.Customer, error) {
	return nil, nil
}
func (f *fakeCustomerRepo) GetByEmail(context.Context, string) (*customer.Customer, error) {
	return nil, nil
}

func (f *fakeCustomerRepo) ConsumeDownloadQuota(_ context.Context, id uint, direction shipment.Direction, amount int) error {
	if f.quotaErr != nil {
		return f.quotaErr
	}
	f.quotaCalls = append(f.quotaCalls, quotaCall{id, direction, amount})
	return nil
}

type fakeInvalidator struct {
	invalidated []uint
}

func (f *fakeInvalidator) InvalidateCustomer(_ context.Context, customerID uint) error {
	f.invalidated = append(f.invalidated, customerID)
	return nil
}

func makeRecords(n int) []shipment.Record {
	out := make([]shipment.Record, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, shipment.Record{
			ID:              uint(i + 1),
			HSCode:          "300290",
			ItemDescription: "vaccine",
			ShipmentDate:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			ValueUSD:        100,
		})
	}
	return out
}

func subscribedCustomer(t *testing.T, remaining int) *customer.Customer {
	t.Helper()
	now := time.Now()
	cust, err := customer.Reconstruct(
		7, "trader@example.com", "Trader", "Acme", "hash",
		customer.CodeSubscription{Codes: []string{"3002"}, ValidUpto: now.AddDate(1, 0, 0), DownloadRemaining: remaining},
		customer.CodeSubscription{},
		now, now,
	)
	if err != nil {
		t.Fatalf("Reconstruct: %v", err)
	}
	return cust
}

func testQuery() shipment.SearchQuery {
	return shipment.SearchQuery{
		HSCode:    "3002",
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestSearchShipmentsProjectionFollowsAccess(t *testing.T) {
	repo := &fakeShipmentRepo{records: makeRecords(3)}
	uc := NewSearchShipmentsUseCase(repo, testLogger())
	page := utils.Pagination{PageIndex: 1, PageSize: 25}

	resp, err := uc.Execute(context.Background(), shipment.DirectionExport, testQuery(), page, entitlement.AccessFull)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !resp.Subscription {
		t.Error("full access should report subscription true")
	}
	if _, ok := resp.Records.([]dto.RecordDTO); !ok {
		t.Errorf("full access records = %T, want []dto.RecordDTO", resp.Records)
	}

	resp, err = uc.Execute(context.Background(), shipment.DirectionExport, testQuery(), page, entitlement.AccessRestricted)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if resp.Subscription {
		t.Error("restricted access should report subscription false")
	}
	restricted, ok := resp.Records.([]dto.RestrictedRecordDTO)
	if !ok {
		t.Fatalf("restricted records = %T, want []dto.RestrictedRecordDTO", resp.Records)
	}
	if len(restricted) != 3 {
		t.Errorf("restricted records = %d, want 3", len(restricted))
	}
}

func TestSearchShipmentsPaginationMetadata(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		pageIndex  int
		pageSize   int
		wantPages  int
		wantOnPage int
	}{
		{"exact multiple", 50, 1, 25, 2, 25},
		{"partial last page", 51, 3, 25, 3, 1},
		{"empty set", 0, 1, 25, 0, 0},
		{"single record", 1, 1, 25, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeShipmentRepo{records: makeRecords(tt.total)}
			uc := NewSearchShipmentsUseCase(repo, testLogger())
			page := utils.Pagination{PageIndex: tt.pageIndex, PageSize: tt.pageSize}

			resp, err := uc.Execute(context.Background(), shipment.DirectionExport, testQuery(), page, entitlement.AccessFull)
			if err != nil {
				t.Fatalf("Execute: %v", err)
			}
			if resp.Pagination.TotalRecords != int64(tt.total) {
				t.Errorf("TotalRecords = %d, want %d", resp.Pagination.TotalRecords, tt.total)
			}
			if resp.Pagination.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", resp.Pagination.TotalPages, tt.wantPages)
			}
			records := resp.Records.([]dto.RecordDTO)
			if len(records) != tt.wantOnPage {
				t.Errorf("page records = %d, want %d", len(records), tt.wantOnPage)
			}
		})
	}
}

func TestDownloadRequiresCoveringSubscription(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name string
		sub  customer.CodeSubscription
	}{
		{
			name: "expired subscription with leftover quota",
			sub:  customer.CodeSubscription{Codes: []string{"3002"}, ValidUpto: now.AddDate(0, 0, -1), DownloadRemaining: 100},
		},
		{
			name: "no covering code prefix",
			sub:  customer.CodeSubscription{Codes: []string{"7201"}, ValidUpto: now.AddDate(1, 0, 0), DownloadRemaining: 100},
		},
		{
			name: "empty code set",
			sub:  customer.CodeSubscription{ValidUpto: now.AddDate(1, 0, 0), DownloadRemaining: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cust, err := customer.Reconstruct(
				7, "trader@example.com", "Trader", "Acme", "hash",
				tt.sub, customer.CodeSubscription{}, now, now,
			)
			if err != nil {
				t.Fatalf("Reconstruct: %v", err)
			}

			repo := &fakeShipmentRepo{records: makeRecords(5)}
			customers := &fakeCustomerRepo{}
			uc := NewDownloadShipmentsUseCase(
				repo, customers, entitlement.NewEvaluator(testLogger()),
				nil, DecrementByPageSize, testLogger(),
			)

			resp, err := uc.Execute(context.Background(), cust,
				shipment.DirectionExport, testQuery(), utils.Pagination{PageIndex: 1, PageSize: 25})

			appErr := apperrors.GetAppError(err)
			if appErr == nil || appErr.Type != apperrors.ErrorTypeForbidden {
				t.Fatalf("Execute error = %v, want forbidden AppError", err)
			}
			if resp != nil {
				t.Errorf("unentitled download returned %d records, want none", len(resp.Records))
			}
			if len(customers.quotaCalls) != 0 {
				t.Errorf("unentitled download consumed quota: %v", customers.quotaCalls)
			}
		})
	}
}

func TestDownloadQuotaGate(t *testing.T) {
	tests := []struct {
		name       string
		remaining  int
		total      int
		wantReason string
	}{
		{"zero quota rejected before counting", 0, 5, "Download Subscription Expired"},
		{"negative-equivalent quota rejected", 0, 0, "Download Subscription Expired"},
		{"matching set larger than quota", 10, 11, "Download Subscription Not Enough"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeShipmentRepo{records: makeRecords(tt.total)}
			customers := &fakeCustomerRepo{}
			uc := NewDownloadShipmentsUseCase(
				repo, customers, entitlement.NewEvaluator(testLogger()),
				nil, DecrementByPageSize, testLogger(),
			)

			_, err := uc.Execute(context.Background(), subscribedCustomer(t, tt.remaining),
				shipment.DirectionExport, testQuery(), utils.Pagination{PageIndex: 1, PageSize: 25})

			appErr := apperrors.GetAppError(err)
			if appErr == nil {
				t.Fatalf("Execute error = %v, want AppError", err)
			}
			if appErr.Message != tt.wantReason {
				t.Errorf("error message = %q, want %q", appErr.Message, tt.wantReason)
			}
			if len(customers.quotaCalls) != 0 {
				t.Error("rejected download must not consume quota")
			}
		})
	}
}

func TestDownloadConsumesQuotaByPolicy(t *testing.T) {
	tests := []struct {
		name       string
		policy     DecrementPolicy
		records    int
		pageSize   int
		wantAmount int
	}{
		{"page size policy charges the window", DecrementByPageSize, 3, 25, 25},
		{"returned policy charges served records", DecrementByRecordsReturned, 3, 25, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeShipmentRepo{records: makeRecords(tt.records)}
			customers := &fakeCustomerRepo{}
			cache := &fakeInvalidator{}
			uc := NewDownloadShipmentsUseCase(
				repo, customers, entitlement.NewEvaluator(testLogger()),
				cache, tt.policy, testLogger(),
			)

			resp, err := uc.Execute(context.Background(), subscribedCustomer(t, 100),
				shipment.DirectionExport, testQuery(), utils.Pagination{PageIndex: 1, PageSize: tt.pageSize})
			if err != nil {
				t.Fatalf("Execute: %v", err)
			}

			if len(customers.quotaCalls) != 1 {
				t.Fatalf("quota calls = %d, want 1", len(customers.quotaCalls))
			}
			call := customers.quotaCalls[0]
			if call.amount != tt.wantAmount {
				t.Errorf("consumed amount = %d, want %d", call.amount, tt.wantAmount)
			}
			if call.id != 7 || call.direction != shipment.DirectionExport {
				t.Errorf("quota call = %+v, want id 7 export", call)
			}
			if len(cache.invalidated) != 1 || cache.invalidated[0] != 7 {
				t.Errorf("cache invalidations = %v, want [7]", cache.invalidated)
			}
			if resp.TotalRecords != int64(tt.records) {
				t.Errorf("TotalRecords = %d, want %d", resp.TotalRecords, tt.records)
			}
			if len(resp.Records) != tt.records {
				t.Errorf("records = %d, want %d", len(resp.Records), tt.records)
			}
		})
	}
}

func TestDownloadConcurrentExhaustionSurfacesAsClientError(t *testing.T) {
	repo := &fakeShipmentRepo{records: makeRecords(5)}
	customers := &fakeCustomerRepo{quotaErr: customer.ErrQuotaExhausted}
	uc := NewDownloadShipmentsUseCase(
		repo, customers, entitlement.NewEvaluator(testLogger()),
		nil, DecrementByRecordsReturned, testLogger(),
	)

	_, err := uc.Execute(context.Background(), subscribedCustomer(t, 100),
		shipment.DirectionExport, testQuery(), utils.Pagination{PageIndex: 1, PageSize: 25})

	appErr := apperrors.GetAppError(err)
	if appErr == nil {
		t.Fatalf("Execute error = %v, want AppError", err)
	}
	if appErr.Message != "Download Subscription Not Enough" {
		t.Errorf("error message = %q", appErr.Message)
	}
}

func TestDownloadCountFailureIsInternal(t *testing.T) {
	repo := &fakeShipmentRepo{countErr: errors.New("connection reset")}
	uc := NewDownloadShipmentsUseCase(
		repo, &fakeCustomerRepo{}, entitlement.NewEvaluator(testLogger()),
		nil, DecrementByPageSize, testLogger(),
	)

	_, err := uc.Execute(context.Background(), subscribedCustomer(t, 100),
		shipment.DirectionExport, testQuery(), utils.Pagination{PageIndex: 1, PageSize: 25})

	appErr := apperrors.GetAppError(err)
	if appErr == nil || appErr.Type != apperrors.ErrorTypeInternal {
		t.Fatalf("error = %v, want internal AppError", err)
	}
}
