package dto

import (
	"github.com/tradesift-io/tradesift/internal/domain/shipment"
)

// SortAnalysisResponse summarizes the matched set: how many records
// matched and how many distinct values each dimension carries.
type SortAnalysisResponse struct {
	TotalRecords     int64 `json:"total_records"`
	Countries        int64 `json:"countries"`
	Buyers           int64 `json:"buyers"`
	Suppliers        int64 `json:"suppliers"`
	OriginPorts      int64 `json:"origin_ports"`
	DestinationPorts int64 `json:"destination_ports"`
}

// DetailAnalysisResponse carries one descending-sorted breakdown per
// dimension, all computed over the same matched set with the same
// metric.
type DetailAnalysisResponse struct {
	Metric           shipment.Metric            `json:"metric"`
	Countries        []shipment.BreakdownEntry  `json:"countries"`
	Buyers           []shipment.BreakdownEntry  `json:"buyers"`
	Suppliers        []shipment.BreakdownEntry  `json:"suppliers"`
	OriginPorts      []shipment.BreakdownEntry  `json:"origin_ports"`
	DestinationPorts []shipment.BreakdownEntry  `json:"destination_ports"`
}

// ParseMetric maps the request metric selector onto a storage metric,
// defaulting to record counts.
func ParseMetric(s string) shipment.Metric {
	if shipment.Metric(s) == shipment.MetricValueUSD {
		return shipment.MetricValueUSD
	}
	return shipment.MetricRecordCount
}
