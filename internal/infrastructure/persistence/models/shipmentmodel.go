package models

import "time"

// ShipmentModel is the persistence model for one trade record. Export
// and import records live in separate tables with an identical shape;
// the repository selects the table by direction, so this model carries
// no TableName of its own.
type ShipmentModel struct {
	ID              uint      `gorm:"primarykey"`
	HSCode          string    `gorm:"not null;size:20;index:idx_hs_code"`
	ItemDescription string    `gorm:"type:text"`
	Quantity        float64   `gorm:"not null;default:0"`
	Unit            string    `gorm:"size:20"`
	Country         string    `gorm:"size:100;index:idx_country"`
	BuyerName       string    `gorm:"size:255"`
	SupplierName    string    `gorm:"size:255"`
	OriginPort      string    `gorm:"size:100"`
	DestinationPort string    `gorm:"size:100"`
	ShipmentDate    time.Time `gorm:"not null;index:idx_shipment_date"`
	ValueUSD        float64   `gorm:"not null;default:0"`
}
