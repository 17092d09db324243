package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/username/penjualan/backend/src/utils"
)

func TestNormalizeSalesRow_DisplayKeys(t *testing.T) {
	// A row the way a spreadsheet-backed workflow emits it: display
	// headers, numeric ID, two-digit year, declared total of zero.
	row := map[string]interface{}{
		"ID Transaksi":   float64(1001),
		"Nama Pelanggan": "Budi Santoso",
		"Produk":         "Produk A",
		"Qty":            float64(2),
		"Harga":          float64(100),
		"Total Harga":    float64(0),
		"Tanggal":        "11-01-25",
	}

	record := NormalizeSalesRow(row, 0)

	assert.Equal(t, "1001", record.TransactionID)
	assert.Equal(t, "Budi Santoso", record.CustomerName)
	assert.Equal(t, "Produk A", record.Product)
	assert.Equal(t, float64(2), record.Quantity)
	assert.Equal(t, float64(100), record.UnitPrice)
	assert.Equal(t, float64(200), record.TotalPrice, "zero declared total must be recomputed")
	assert.Equal(t, "2025-01-11", record.Date)
}

func TestNormalizeSalesRow_CanonicalKeys(t *testing.T) {
	row := map[string]interface{}{
		"id_transaksi":   "TX-17",
		"nama_pelanggan": "Siti Aminah",
		"produk":         "Produk B",
		"qty":            "3",
		"harga":          "Rp 150",
		"total_harga":    float64(999),
		"tanggal":        "2025-02-11",
	}

	record := NormalizeSalesRow(row, 4)

	assert.Equal(t, "TX-17", record.TransactionID)
	assert.Equal(t, "Siti Aminah", record.CustomerName)
	assert.Equal(t, float64(3), record.Quantity)
	assert.Equal(t, float64(150), record.UnitPrice)
	assert.Equal(t, float64(999), record.TotalPrice, "non-zero declared total is trusted")
	assert.Equal(t, "2025-02-11", record.Date)
}

func TestNormalizeSalesRow_GarbageRow(t *testing.T) {
	// Normalization is total: string garbage in every field still yields
	// a fully populated record.
	row := map[string]interface{}{
		"Nama Pelanggan": "??",
		"Produk":         nil,
		"Qty":            "banyak",
		"Harga":          "mahal",
		"Total Harga":    "gratis",
		"Tanggal":        nil,
	}

	record := NormalizeSalesRow(row, 2)

	assert.Equal(t, "3", record.TransactionID, "missing ID falls back to rowIndex+1")
	assert.Equal(t, "??", record.CustomerName)
	assert.Equal(t, "", record.Product)
	assert.Equal(t, float64(0), record.Quantity)
	assert.Equal(t, float64(0), record.UnitPrice)
	assert.Equal(t, float64(0), record.TotalPrice)
	assert.Equal(t, utils.TodayISO(), record.Date, "missing date defaults to today")
}

func TestNormalizeSalesRow_SynthesizedID(t *testing.T) {
	// A present-but-blank ID chain ends in the synthesized row-{n} form.
	row := map[string]interface{}{
		"ID Transaksi": "   ",
		"Qty":          float64(1),
		"Harga":        float64(10),
		"Tanggal":      "2025-03-01",
	}

	record := NormalizeSalesRow(row, 6)

	assert.Equal(t, "row-7", record.TransactionID)
}

func TestNormalizeSalesRow_RowNumberFallback(t *testing.T) {
	row := map[string]interface{}{
		"row_number": float64(12),
		"Qty":        float64(4),
		"Harga":      float64(25),
		"Tanggal":    "2025-03-02",
	}

	record := NormalizeSalesRow(row, 0)

	assert.Equal(t, "12", record.TransactionID)
	assert.Equal(t, float64(100), record.TotalPrice)
}

func TestNormalizeSalesRow_SerialDate(t *testing.T) {
	row := map[string]interface{}{
		"id":      "55",
		"Qty":     float64(1),
		"Harga":   float64(1),
		"Tanggal": float64(45678),
	}

	record := NormalizeSalesRow(row, 0)

	assert.Equal(t, "2025-01-21", record.Date)
}
