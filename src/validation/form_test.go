package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/username/penjualan/backend/src/models"
	"github.com/username/penjualan/backend/src/utils"
)

func validForm() models.SalesForm {
	return models.SalesForm{
		CustomerName: "Budi Santoso",
		Product:      "Produk A",
		Quantity:     2,
		UnitPrice:    100,
		Date:         utils.TodayISO(),
	}
}

func TestValidateSalesForm_Valid(t *testing.T) {
	assert.Empty(t, ValidateSalesForm(validForm()))
}

func TestValidateSalesForm_WireDateAccepted(t *testing.T) {
	form := validForm()
	form.Date = "11-01-2025"
	assert.Empty(t, ValidateSalesForm(form))
}

func TestValidateSalesForm_AllFieldsChecked(t *testing.T) {
	// Single-character names, zero quantity: three independent failures,
	// and only those three.
	form := models.SalesForm{
		CustomerName: "A",
		Product:      "B",
		Quantity:     0,
		UnitPrice:    10,
		Date:         utils.TodayISO(),
	}

	errs := ValidateSalesForm(form)

	assert.Equal(t, "Nama pelanggan minimal 2 karakter", errs["nama_pelanggan"])
	assert.Equal(t, "Nama produk minimal 2 karakter", errs["produk"])
	assert.Equal(t, "Qty harus lebih dari 0", errs["qty"])
	assert.Len(t, errs, 3)
}

func TestValidateSalesForm_FieldRules(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.SalesForm)
		wantField string
		wantMsg   string
	}{
		{
			name:      "customer name required",
			mutate:    func(f *models.SalesForm) { f.CustomerName = "   " },
			wantField: "nama_pelanggan",
			wantMsg:   "Nama pelanggan wajib diisi",
		},
		{
			name:      "product required",
			mutate:    func(f *models.SalesForm) { f.Product = "" },
			wantField: "produk",
			wantMsg:   "Produk wajib diisi",
		},
		{
			name:      "quantity must be an integer",
			mutate:    func(f *models.SalesForm) { f.Quantity = 1.5 },
			wantField: "qty",
			wantMsg:   "Qty harus berupa bilangan bulat",
		},
		{
			name:      "quantity upper bound",
			mutate:    func(f *models.SalesForm) { f.Quantity = 1_000_000 },
			wantField: "qty",
			wantMsg:   "Qty terlalu besar",
		},
		{
			name:      "price must be positive",
			mutate:    func(f *models.SalesForm) { f.UnitPrice = 0 },
			wantField: "harga",
			wantMsg:   "Harga harus lebih dari 0",
		},
		{
			name:      "price upper bound",
			mutate:    func(f *models.SalesForm) { f.UnitPrice = 1_000_000 },
			wantField: "harga",
			wantMsg:   "Harga terlalu besar",
		},
		{
			name:      "date required",
			mutate:    func(f *models.SalesForm) { f.Date = "" },
			wantField: "tanggal",
			wantMsg:   "Tanggal wajib diisi",
		},
		{
			name:      "date must be a calendar date",
			mutate:    func(f *models.SalesForm) { f.Date = "kemarin" },
			wantField: "tanggal",
			wantMsg:   "Format tanggal tidak valid",
		},
		{
			name: "no future-dated sales",
			mutate: func(f *models.SalesForm) {
				f.Date = time.Now().AddDate(0, 0, 1).Format(utils.ISODateFormat)
			},
			wantField: "tanggal",
			wantMsg:   "Tanggal tidak boleh di masa depan",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			errs := ValidateSalesForm(form)
			assert.Equal(t, tt.wantMsg, errs[tt.wantField])
			assert.Len(t, errs, 1)
		})
	}
}

func TestErrorsImplementsError(t *testing.T) {
	errs := Errors{"qty": "Qty harus lebih dari 0", "produk": "Produk wajib diisi"}
	assert.Equal(t, "produk: Produk wajib diisi; qty: Qty harus lebih dari 0", errs.Error())
}
