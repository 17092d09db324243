package parsers

import (
	"fmt"

	"github.com/username/penjualan/backend/src/logger"
	"github.com/username/penjualan/backend/src/models"
	"github.com/username/penjualan/backend/src/utils"
)

// Candidate keys per field, probed in order. Rows coming back from the
// webhook service use either the spreadsheet's display headers
// ("Nama Pelanggan") or the canonical snake_case keys, depending on which
// workflow node produced them.
var (
	idKeys       = []string{"ID Transaksi", "id_transaksi", "id", "row_number"}
	customerKeys = []string{"Nama Pelanggan", "nama_pelanggan"}
	productKeys  = []string{"Produk", "produk"}
	quantityKeys = []string{"Qty", "qty"}
	priceKeys    = []string{"Harga", "harga"}
	totalKeys    = []string{"Total Harga", "total_harga"}
	dateKeys     = []string{"Tanggal", "tanggal"}
)

// probe returns the first present, non-nil value among the candidate keys.
func probe(row map[string]interface{}, keys []string) interface{} {
	for _, key := range keys {
		if v, ok := row[key]; ok && v != nil {
			return v
		}
	}
	return nil
}

// NormalizeSalesRow maps one loosely-typed row from the webhook service
// into the canonical record shape. It is total: every field resolves to a
// concrete value no matter how malformed the row is.
//
// index is the row's position within the current fetch batch and seeds the
// synthesized row-{n} fallback ID, which is only unique within that batch.
func NormalizeSalesRow(row map[string]interface{}, index int) models.SalesRecord {
	idValue := probe(row, idKeys)
	if idValue == nil {
		idValue = index + 1
	}
	id := ParseString(idValue, fmt.Sprintf("row-%d", index+1))

	quantity := ParseNumber(probe(row, quantityKeys))
	unitPrice := ParseNumber(probe(row, priceKeys))

	// A declared total of zero is treated as "not provided".
	total := ParseNumber(probe(row, totalKeys))
	if total == 0 {
		total = quantity * unitPrice
	}

	date := ParseDateValue(probe(row, dateKeys))
	if date == "" {
		date = utils.TodayISO()
		if logger.L != nil {
			logger.L.Warn("Sales row has no parseable date, defaulting to today",
				"transactionId", id, "rowIndex", index)
		}
	}

	return models.SalesRecord{
		TransactionID: id,
		CustomerName:  ParseString(probe(row, customerKeys), ""),
		Product:       ParseString(probe(row, productKeys), ""),
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		TotalPrice:    total,
		Date:          date,
	}
}
