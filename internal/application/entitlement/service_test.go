package entitlement

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradesift-io/tradesift/internal/domain/customer"
	"github.com/tradesift-io/tradesift/internal/domain/shipment"
	"github.com/tradesift-io/tradesift/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type countOnlyRepo struct {
	count    int64
	countErr error
}

func (r *countOnlyRepo) Search(context.Context, shipment.Direction, shipment.Predicate, int, int) ([]shipment.Record, error) {
	return nil, nil
}

func (r *countOnlyRepo) Count(context.Context, shipment.Direction, shipment.Predicate) (int64, error) {
	return r.count, r.countErr
}

func (r *countOnlyRepo) DistinctCounts(context.Context, shipment.Direction, shipment.Predicate) (*shipment.Cardinality, error) {
	return nil, nil
}

func (r *countOnlyRepo) Breakdown(context.Context, shipment.Direction, shipment.Predicate, shipment.Dimension, shipment.Metric) ([]shipment.BreakdownEntry, error) {
	return nil, nil
}

func (r *countOnlyRepo) BulkInsert(context.Context, shipment.Direction, []shipment.Record) error {
	return nil
}

func customerWith(t *testing.T, direction shipment.Direction, sub customer.CodeSubscription) *customer.Customer {
	t.Helper()
	cust, err := customer.Reconstruct(
		1, "buyer@example.com", "Buyer", "Acme Trading", "hash",
		customer.CodeSubscription{}, customer.CodeSubscription{},
		time.Now(), time.Now(),
	)
	require.NoError(t, err)
	cust.RenewSubscription(direction, sub)
	return cust
}

func TestEvaluate(t *testing.T) {
	evaluator := NewEvaluator(testLogger())
	now := time.Now()

	tests := []struct {
		name      string
		cust      *customer.Customer
		direction shipment.Direction
		hsCode    string
		want      AccessLevel
	}{
		{
			name:      "nil customer is restricted",
			cust:      nil,
			direction: shipment.DirectionExport,
			hsCode:    "850440",
			want:      AccessRestricted,
		},
		{
			name: "live subscription with matching code prefix grants full access",
			cust: customerWith(t, shipment.DirectionExport, customer.CodeSubscription{
				Codes:     []string{"8504"},
				ValidUpto: now.Add(24 * time.Hour),
			}),
			direction: shipment.DirectionExport,
			hsCode:    "850440",
			want:      AccessFull,
		},
		{
			name: "expired subscription is restricted",
			cust: customerWith(t, shipment.DirectionExport, customer.CodeSubscription{
				Codes:     []string{"8504"},
				ValidUpto: now.Add(-time.Hour),
			}),
			direction: shipment.DirectionExport,
			hsCode:    "850440",
			want:      AccessRestricted,
		},
		{
			name: "non-matching code is restricted",
			cust: customerWith(t, shipment.DirectionExport, customer.CodeSubscription{
				Codes:     []string{"7201"},
				ValidUpto: now.Add(24 * time.Hour),
			}),
			direction: shipment.DirectionExport,
			hsCode:    "850440",
			want:      AccessRestricted,
		},
		{
			name: "export subscription does not cover import queries",
			cust: customerWith(t, shipment.DirectionExport, customer.CodeSubscription{
				Codes:     []string{"8504"},
				ValidUpto: now.Add(24 * time.Hour),
			}),
			direction: shipment.DirectionImport,
			hsCode:    "850440",
			want:      AccessRestricted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := evaluator.Evaluate(tt.cust, tt.direction, tt.hsCode)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckDownloadQuota(t *testing.T) {
	evaluator := NewEvaluator(testLogger())
	sub := customer.CodeSubscription{
		Codes:             []string{"8504"},
		ValidUpto:         time.Now().Add(24 * time.Hour),
		DownloadRemaining: 100,
	}

	t.Run("no quota remaining is rejected before counting", func(t *testing.T) {
		expired := sub
		expired.DownloadRemaining = 0
		cust := customerWith(t, shipment.DirectionExport, expired)

		decision, err := evaluator.CheckDownloadQuota(
			context.Background(), &countOnlyRepo{}, cust, shipment.DirectionExport, shipment.Predicate{})
		require.NoError(t, err)
		assert.False(t, decision.Allowed)
		assert.Equal(t, "Download Subscription Expired", decision.Reason)
	})

	t.Run("matching records over quota are rejected", func(t *testing.T) {
		cust := customerWith(t, shipment.DirectionExport, sub)

		decision, err := evaluator.CheckDownloadQuota(
			context.Background(), &countOnlyRepo{count: 101}, cust, shipment.DirectionExport, shipment.Predicate{})
		require.NoError(t, err)
		assert.False(t, decision.Allowed)
		assert.Equal(t, "Download Subscription Not Enough", decision.Reason)
		assert.Equal(t, int64(101), decision.TotalRecords)
	})

	t.Run("count within quota is allowed", func(t *testing.T) {
		cust := customerWith(t, shipment.DirectionExport, sub)

		decision, err := evaluator.CheckDownloadQuota(
			context.Background(), &countOnlyRepo{count: 100}, cust, shipment.DirectionExport, shipment.Predicate{})
		require.NoError(t, err)
		assert.True(t, decision.Allowed)
		assert.Equal(t, int64(100), decision.TotalRecords)
	})
}
