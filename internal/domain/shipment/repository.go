package shipment

import "context"

// Dimension is an aggregation axis for analytics queries.
type Dimension string

const (
	DimensionCountry         Dimension = "country"
	DimensionBuyer           Dimension = "buyer"
	DimensionSupplier        Dimension = "supplier"
	DimensionOriginPort      Dimension = "origin_port"
	DimensionDestinationPort Dimension = "destination_port"
)

// AnalysisDimensions lists every dimension a breakdown is computed over,
// in response order.
func AnalysisDimensions() []Dimension {
	return []Dimension{
		DimensionCountry,
		DimensionBuyer,
		DimensionSupplier,
		DimensionOriginPort,
		DimensionDestinationPort,
	}
}

// Metric selects what a breakdown aggregates per group.
type Metric string

const (
	MetricRecordCount Metric = "count"
	MetricValueUSD    Metric = "value_usd"
)

// BreakdownEntry is one {value, metric} pair of a detail breakdown.
type BreakdownEntry struct {
	Value  string  `json:"data"`
	Metric float64 `json:"count"`
}

// Cardinality holds the distinct-value counts of each dimension within
// a matched set.
type Cardinality struct {
	Countries        int64
	Buyers           int64
	Suppliers        int64
	OriginPorts      int64
	DestinationPorts int64
}

// Repository is the storage contract for shipment records. All queries
// are scoped by direction; export and import records never mix.
type Repository interface {
	// Search returns one page of records matching the predicate, in
	// storage natural order.
	Search(ctx context.Context, direction Direction, pred Predicate, offset, limit int) ([]Record, error)

	// Count returns the total number of records matching the predicate,
	// independent of any page window.
	Count(ctx context.Context, direction Direction, pred Predicate) (int64, error)

	// DistinctCounts returns the distinct-value cardinality of every
	// dimension within the matched set.
	DistinctCounts(ctx context.Context, direction Direction, pred Predicate) (*Cardinality, error)

	// Breakdown groups the full matched set by the dimension and returns
	// descending-sorted {value, metric} pairs. Ties keep storage order.
	Breakdown(ctx context.Context, direction Direction, pred Predicate, dim Dimension, metric Metric) ([]BreakdownEntry, error)

	// BulkInsert inserts one ingestion batch.
	BulkInsert(ctx context.Context, direction Direction, records []Record) error
}
