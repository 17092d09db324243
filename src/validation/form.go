package validation

import (
	"math"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/username/penjualan/backend/src/models"
	"github.com/username/penjualan/backend/src/utils"
)

const (
	maxQuantity  = 999_999
	maxUnitPrice = 999_999
)

// Errors maps field name to a user-facing message. An empty map means the
// input is valid. It implements error so services can return it directly.
type Errors map[string]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e[field])
	}
	return strings.Join(parts, "; ")
}

// ValidateSalesForm checks user-entered record fields against the business
// rules. Every field is checked; within a field the first failing rule wins.
// Messages match the web UI's inline texts.
func ValidateSalesForm(f models.SalesForm) Errors {
	errs := Errors{}

	name := strings.TrimSpace(f.CustomerName)
	if name == "" {
		errs["nama_pelanggan"] = "Nama pelanggan wajib diisi"
	} else if utf8.RuneCountInString(name) < 2 {
		errs["nama_pelanggan"] = "Nama pelanggan minimal 2 karakter"
	}

	product := strings.TrimSpace(f.Product)
	if product == "" {
		errs["produk"] = "Produk wajib diisi"
	} else if utf8.RuneCountInString(product) < 2 {
		errs["produk"] = "Nama produk minimal 2 karakter"
	}

	if f.Quantity <= 0 {
		errs["qty"] = "Qty harus lebih dari 0"
	} else if f.Quantity != math.Trunc(f.Quantity) {
		errs["qty"] = "Qty harus berupa bilangan bulat"
	} else if f.Quantity > maxQuantity {
		errs["qty"] = "Qty terlalu besar"
	}

	if f.UnitPrice <= 0 {
		errs["harga"] = "Harga harus lebih dari 0"
	} else if f.UnitPrice > maxUnitPrice {
		errs["harga"] = "Harga terlalu besar"
	}

	date := strings.TrimSpace(f.Date)
	if date == "" {
		errs["tanggal"] = "Tanggal wajib diisi"
	} else if t, err := parseFormDate(date); err != nil {
		errs["tanggal"] = "Format tanggal tidak valid"
	} else if t.After(time.Now()) {
		errs["tanggal"] = "Tanggal tidak boleh di masa depan"
	}

	return errs
}

// parseFormDate accepts the canonical ISO layout and, leniently, the wire
// layout so an edit form pre-filled from remote data still validates.
func parseFormDate(s string) (time.Time, error) {
	t, err := time.Parse(utils.ISODateFormat, s)
	if err == nil {
		return t, nil
	}
	return time.Parse(utils.WireDateFormat, s)
}
