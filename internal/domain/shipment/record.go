package shipment

import (
	"fmt"
	"strings"
	"time"
)

// Direction identifies which trade flow a record belongs to.
// Export and import shipments share one shape but live in disjoint storage.
type Direction string

const (
	DirectionExport Direction = "export"
	DirectionImport Direction = "import"
)

func (d Direction) String() string {
	return string(d)
}

func (d Direction) IsValid() bool {
	return d == DirectionExport || d == DirectionImport
}

func ParseDirection(s string) (Direction, error) {
	d := Direction(strings.ToLower(strings.TrimSpace(s)))
	if !d.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
	return d, nil
}

// Record is a single trade shipment row. Records are immutable once
// ingested; they are created only by bulk ingestion and never updated
// or deleted through this service.
type Record struct {
	ID              uint
	HSCode          string
	ItemDescription string
	Quantity        float64
	Unit            string
	Country         string
	BuyerName       string
	SupplierName    string
	OriginPort      string
	DestinationPort string
	ShipmentDate    time.Time
	ValueUSD        float64
}
