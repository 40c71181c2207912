package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/tradesift-io/tradesift/internal/domain/shipment"
	"github.com/tradesift-io/tradesift/internal/infrastructure/persistence/mappers"
	"github.com/tradesift-io/tradesift/internal/infrastructure/persistence/models"
	"github.com/tradesift-io/tradesift/internal/shared/constants"
	"github.com/tradesift-io/tradesift/internal/shared/logger"
)

// fieldColumns whitelists the columns a regex conjunct may target.
// Patterns are always bound as parameters; only these trusted names are
// interpolated into SQL.
var fieldColumns = map[shipment.Field]string{
	shipment.FieldHSCode:          "hs_code",
	shipment.FieldItemDescription: "item_description",
	shipment.FieldBuyerName:       "buyer_name",
	shipment.FieldSupplierName:    "supplier_name",
	shipment.FieldOriginPort:      "origin_port",
	shipment.FieldUnit:            "unit",
	shipment.FieldCountry:         "country",
}

var dimensionColumns = map[shipment.Dimension]string{
	shipment.DimensionCountry:         "country",
	shipment.DimensionBuyer:           "buyer_name",
	shipment.DimensionSupplier:        "supplier_name",
	shipment.DimensionOriginPort:      "origin_port",
	shipment.DimensionDestinationPort: "destination_port",
}

// ShipmentRepository implements shipment.Repository on MySQL. Regex
// conjuncts are evaluated with REGEXP_LIKE in case-insensitive mode so
// the predicate semantics hold regardless of column collation.
type ShipmentRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewShipmentRepository creates a new shipment repository
func NewShipmentRepository(db *gorm.DB, logger logger.Interface) shipment.Repository {
	return &ShipmentRepository{
		db:     db,
		logger: logger,
	}
}

func tableFor(direction shipment.Direction) string {
	if direction == shipment.DirectionImport {
		return constants.TableImportShipments
	}
	return constants.TableExportShipments
}

// scoped returns a query over the direction's table with every
// predicate conjunct applied.
func (r *ShipmentRepository) scoped(ctx context.Context, direction shipment.Direction, pred shipment.Predicate) (*gorm.DB, error) {
	q := r.db.WithContext(ctx).
		Table(tableFor(direction)).
		Where("shipment_date BETWEEN ? AND ?", pred.DateFrom, pred.DateTo)

	for _, c := range pred.RegexConjuncts() {
		col, ok := fieldColumns[c.Field]
		if !ok {
			return nil, fmt.Errorf("unknown predicate field: %s", c.Field)
		}
		q = q.Where(fmt.Sprintf("REGEXP_LIKE(%s, ?, 'i')", col), c.Pattern)
	}
	return q, nil
}

// Search returns one page of records matching the predicate.
func (r *ShipmentRepository) Search(ctx context.Context, direction shipment.Direction, pred shipment.Predicate, offset, limit int) ([]shipment.Record, error) {
	q, err := r.scoped(ctx, direction, pred)
	if err != nil {
		return nil, err
	}

	var rows []models.ShipmentModel
	if err := q.Order("id").Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to search shipments", "direction", direction, "error", err)
		return nil, fmt.Errorf("failed to search shipments: %w", err)
	}
	return mappers.ToShipmentRecords(rows), nil
}

// Count returns the total number of matching records.
func (r *ShipmentRepository) Count(ctx context.Context, direction shipment.Direction, pred shipment.Predicate) (int64, error) {
	q, err := r.scoped(ctx, direction, pred)
	if err != nil {
		return 0, err
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count shipments", "direction", direction, "error", err)
		return 0, fmt.Errorf("failed to count shipments: %w", err)
	}
	return total, nil
}

// DistinctCounts computes every dimension cardinality in one query.
func (r *ShipmentRepository) DistinctCounts(ctx context.Context, direction shipment.Direction, pred shipment.Predicate) (*shipment.Cardinality, error) {
	q, err := r.scoped(ctx, direction, pred)
	if err != nil {
		return nil, err
	}

	var row struct {
		Countries        int64
		Buyers           int64
		Suppliers        int64
		OriginPorts      int64
		DestinationPorts int64
	}
	err = q.Select(
		"COUNT(DISTINCT country) AS countries, " +
			"COUNT(DISTINCT buyer_name) AS buyers, " +
			"COUNT(DISTINCT supplier_name) AS suppliers, " +
			"COUNT(DISTINCT origin_port) AS origin_ports, " +
			"COUNT(DISTINCT destination_port) AS destination_ports",
	).Scan(&row).Error
	if err != nil {
		r.logger.Errorw("failed to compute distinct counts", "direction", direction, "error", err)
		return nil, fmt.Errorf("failed to compute distinct counts: %w", err)
	}

	return &shipment.Cardinality{
		Countries:        row.Countries,
		Buyers:           row.Buyers,
		Suppliers:        row.Suppliers,
		OriginPorts:      row.OriginPorts,
		DestinationPorts: row.DestinationPorts,
	}, nil
}

// Breakdown groups the full matched set by one dimension, sorted by the
// aggregated metric in descending order.
func (r *ShipmentRepository) Breakdown(ctx context.Context, direction shipment.Direction, pred shipment.Predicate, dim shipment.Dimension, metric shipment.Metric) ([]shipment.BreakdownEntry, error) {
	col, ok := dimensionColumns[dim]
	if !ok {
		return nil, fmt.Errorf("unknown dimension: %s", dim)
	}

	metricExpr := "COUNT(*)"
	if metric == shipment.MetricValueUSD {
		metricExpr = "COALESCE(SUM(value_usd), 0)"
	}

	q, err := r.scoped(ctx, direction, pred)
	if err != nil {
		return nil, err
	}

	var entries []shipment.BreakdownEntry
	err = q.Select(fmt.Sprintf("%s AS value, %s AS metric", col, metricExpr)).
		Group(col).
		Order("metric DESC").
		Scan(&entries).Error
	if err != nil {
		r.logger.Errorw("failed to compute breakdown",
			"direction", direction,
			"dimension", dim,
			"error", err,
		)
		return nil, fmt.Errorf("failed to compute breakdown: %w", err)
	}
	return entries, nil
}

// BulkInsert inserts one ingestion batch into the direction's table.
func (r *ShipmentRepository) BulkInsert(ctx context.Context, direction shipment.Direction, records []shipment.Record) error {
	if len(records) == 0 {
		return nil
	}

	rows := mappers.ToShipmentModels(records)
	if err := r.db.WithContext(ctx).Table(tableFor(direction)).Create(&rows).Error; err != nil {
		r.logger.Errorw("failed to bulk insert shipments",
			"direction", direction,
			"records", len(records),
			"error", err,
		)
		return fmt.Errorf("failed to bulk insert shipments: %w", err)
	}
	return nil
}
