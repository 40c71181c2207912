package mappers

import (
	"github.com/tradesift-io/tradesift/internal/domain/shipment"
	"github.com/tradesift-io/tradesift/internal/infrastructure/persistence/models"
)

// ToShipmentRecord converts a persistence model to a domain record.
func ToShipmentRecord(model models.ShipmentModel) shipment.Record {
	return shipment.Record{
		ID:              model.ID,
		HSCode:          model.HSCode,
		ItemDescription: model.ItemDescription,
		Quantity:        model.Quantity,
		Unit:            model.Unit,
		Country:         model.Country,
		BuyerName:       model.BuyerName,
		SupplierName:    model.SupplierName,
		OriginPort:      model.OriginPort,
		DestinationPort: model.DestinationPort,
		ShipmentDate:    model.ShipmentDate,
		ValueUSD:        model.ValueUSD,
	}
}

// ToShipmentRecords converts a page of models to domain records.
func ToShipmentRecords(ms []models.ShipmentModel) []shipment.Record {
	out := make([]shipment.Record, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToShipmentRecord(m))
	}
	return out
}

// ToShipmentModel converts a domain record to a persistence model. The
// ID is left for the database to assign.
func ToShipmentModel(r shipment.Record) models.ShipmentModel {
	return models.ShipmentModel{
		HSCode:          r.HSCode,
		ItemDescription: r.ItemDescription,
		Quantity:        r.Quantity,
		Unit:            r.Unit,
		Country:         r.Country,
		BuyerName:       r.BuyerName,
		SupplierName:    r.SupplierName,
		OriginPort:      r.OriginPort,
		DestinationPort: r.DestinationPort,
		ShipmentDate:    r.ShipmentDate,
		ValueUSD:        r.ValueUSD,
	}
}

// ToShipmentModels converts an ingestion batch to persistence models.
func ToShipmentModels(rs []shipment.Record) []models.ShipmentModel {
	out := make([]models.ShipmentModel, 0, len(rs))
	for _, r := range rs {
		out = append(out, ToShipmentModel(r))
	}
	return out
}
