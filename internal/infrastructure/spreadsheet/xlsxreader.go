// Package spreadsheet parses uploaded xlsx workbooks into shipment
// records for bulk ingestion.
package spreadsheet

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/tradesift-io/tradesift/internal/domain/shipment"
	"github.com/tradesift-io/tradesift/internal/shared/logger"
)

// column headers recognized in the first row, matched after trimming
// and lowercasing
const (
	headerHSCode          = "hs_code"
	headerItemDescription = "item_description"
	headerQuantity        = "quantity"
	headerUnit            = "uqc"
	headerCountry         = "country"
	headerBuyerName       = "buyer_name"
	headerSupplierName    = "supplier_name"
	headerOriginPort      = "origin_port"
	headerDestinationPort = "destination_port"
	headerDate            = "date"
	headerValueUSD        = "value_usd"
)

var dateLayouts = []string{
	"2006-01-02",
	"02-01-2006",
	"01-02-06",
	"2006-01-02 15:04:05",
	"2/1/2006",
}

// XLSXShipmentReader reads shipment rows from the first sheet of an
// xlsx workbook.
type XLSXShipmentReader struct {
	logger logger.Interface
}

func NewXLSXShipmentReader(logger logger.Interface) *XLSXShipmentReader {
	return &XLSXShipmentReader{logger: logger}
}

// Read parses the workbook at path. The first row must carry column
// headers; a row whose date cannot be parsed is skipped and counted,
// never aborting the whole file.
func (r *XLSXShipmentReader) Read(path string) ([]shipment.Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet has no data rows")
	}

	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := cols[headerHSCode]; !ok {
		return nil, fmt.Errorf("missing required column: %s", headerHSCode)
	}
	if _, ok := cols[headerDate]; !ok {
		return nil, fmt.Errorf("missing required column: %s", headerDate)
	}

	records := make([]shipment.Record, 0, len(rows)-1)
	skipped := 0
	for i, row := range rows[1:] {
		date, err := parseDate(cell(row, cols, headerDate))
		if err != nil {
			r.logger.Warnw("skipping row with unparsable date",
				"row", i+2,
				"value", cell(row, cols, headerDate),
			)
			skipped++
			continue
		}

		records = append(records, shipment.Record{
			HSCode:          cell(row, cols, headerHSCode),
			ItemDescription: cell(row, cols, headerItemDescription),
			Quantity:        parseFloat(cell(row, cols, headerQuantity)),
			Unit:            cell(row, cols, headerUnit),
			Country:         cell(row, cols, headerCountry),
			BuyerName:       cell(row, cols, headerBuyerName),
			SupplierName:    cell(row, cols, headerSupplierName),
			OriginPort:      cell(row, cols, headerOriginPort),
			DestinationPort: cell(row, cols, headerDestinationPort),
			ShipmentDate:    date,
			ValueUSD:        parseFloat(cell(row, cols, headerValueUSD)),
		})
	}

	if skipped > 0 {
		r.logger.Infow("workbook parsed with skipped rows",
			"records", len(records),
			"skipped", skipped,
		)
	}
	return records, nil
}

func cell(row []string, cols map[string]int, header string) string {
	idx, ok := cols[header]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseFloat(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0
	}
	return v
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	// GetRows renders date cells with the sheet's own format, so a few
	// layouts have to be tried
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	// Numeric cells carry the raw Excel serial date
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %q", s)
}
