package gateway

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/username/penjualan/backend/src/models"
	"github.com/username/penjualan/backend/src/parsers"
)

func floatPtr(v float64) *float64 { return &v }
func strPtr(s string) *string     { return &s }

func TestEncodePayload_FullForm(t *testing.T) {
	form := models.SalesForm{
		CustomerName: "Budi Santoso",
		Product:      "Produk A",
		Quantity:     2,
		UnitPrice:    100,
		Date:         "2025-01-11",
	}

	params := EncodePayload(models.PayloadFromForm(form))

	assert.Equal(t, "Budi Santoso", params.Get("namaPelanggan"))
	assert.Equal(t, "Produk A", params.Get("produk"))
	assert.Equal(t, "2", params.Get("qty"))
	assert.Equal(t, "100", params.Get("harga"))
	assert.Equal(t, "200", params.Get("totalHarga"))
	assert.Equal(t, "11-01-2025", params.Get("tanggal"), "ISO date must go out in wire layout")
}

func TestEncodePayload_PartialUpdate(t *testing.T) {
	params := EncodePayload(models.SalesPayload{
		Product: strPtr("Produk B"),
	})

	assert.Equal(t, "Produk B", params.Get("produk"))
	assert.Len(t, params, 1, "absent fields must be omitted")
}

func TestEncodePayload_NonFiniteNumbersOmitted(t *testing.T) {
	params := EncodePayload(models.SalesPayload{
		Quantity:  floatPtr(math.NaN()),
		UnitPrice: floatPtr(50),
	})

	assert.False(t, params.Has("qty"))
	assert.Equal(t, "50", params.Get("harga"))
	assert.False(t, params.Has("totalHarga"), "total derived from a NaN factor must be omitted")
}

func TestEncodePayload_TotalDerivation(t *testing.T) {
	tests := []struct {
		name    string
		payload models.SalesPayload
		want    string
		present bool
	}{
		{
			name: "explicit total wins over derivation",
			payload: models.SalesPayload{
				Quantity:   floatPtr(2),
				UnitPrice:  floatPtr(100),
				TotalPrice: floatPtr(500),
			},
			want:    "500",
			present: true,
		},
		{
			name: "explicit zero is kept",
			payload: models.SalesPayload{
				TotalPrice: floatPtr(0),
			},
			want:    "0",
			present: true,
		},
		{
			name: "derived from both factors",
			payload: models.SalesPayload{
				Quantity:  floatPtr(3),
				UnitPrice: floatPtr(150),
			},
			want:    "450",
			present: true,
		},
		{
			name: "single factor yields nothing",
			payload: models.SalesPayload{
				Quantity: floatPtr(3),
			},
			present: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := EncodePayload(tt.payload)
			assert.Equal(t, tt.present, params.Has("totalHarga"))
			if tt.present {
				assert.Equal(t, tt.want, params.Get("totalHarga"))
			}
		})
	}
}

func TestFormatWireDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "wire layout passes through",
			input: "11-01-2025",
			want:  "11-01-2025",
		},
		{
			name:  "ISO is transposed",
			input: "2025-01-11",
			want:  "11-01-2025",
		},
		{
			name:  "two-digit year is re-parsed",
			input: "11-01-25",
			want:  "11-01-2025",
		},
		{
			name:  "spreadsheet serial is re-parsed",
			input: "45678",
			want:  "21-01-2025",
		},
		{
			name:  "unparseable text falls back to the original",
			input: "  besok  ",
			want:  "besok",
		},
		{
			name:  "empty yields empty",
			input: "   ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatWireDate(tt.input))
		})
	}
}

func TestWireDateRoundTrip(t *testing.T) {
	// Encoding an ISO date and parsing the service's DD-MM-YYYY echo must
	// land on the same calendar date.
	for _, iso := range []string{"2025-01-11", "2024-02-29", "1999-12-31"} {
		wire := FormatWireDate(iso)
		assert.Equal(t, iso, parsers.ParseDateValue(wire), "round trip for %s via %s", iso, wire)
	}
}
