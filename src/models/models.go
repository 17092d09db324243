package models

import "strings"

// SalesRecord is the canonical in-memory shape of a single sales entry.
// JSON tags match the keys the web UI consumes, which mirror the
// canonical snake_case keys of the webhook service.
type SalesRecord struct {
	TransactionID string  `json:"id_transaksi"`
	CustomerName  string  `json:"nama_pelanggan"`
	Product       string  `json:"produk"`
	Quantity      float64 `json:"qty"`
	UnitPrice     float64 `json:"harga"`
	TotalPrice    float64 `json:"total_harga"`
	Date          string  `json:"tanggal"` // ISO YYYY-MM-DD
}

// SalesForm is user-entered input for create/update, before validation.
type SalesForm struct {
	CustomerName string  `json:"nama_pelanggan"`
	Product      string  `json:"produk"`
	Quantity     float64 `json:"qty"`
	UnitPrice    float64 `json:"harga"`
	Date         string  `json:"tanggal"`
}

// SalesPayload is a partial record destined for the webhook service.
// Pointer fields distinguish "not set" from zero values, so partial
// updates only carry the fields the caller actually provided.
type SalesPayload struct {
	CustomerName *string
	Product      *string
	Quantity     *float64
	UnitPrice    *float64
	TotalPrice   *float64
	Date         *string // ISO or wire DD-MM-YYYY; transcoded on encode
}

// PayloadFromForm builds a full payload from a validated form, deriving
// the total from quantity and unit price.
func PayloadFromForm(f SalesForm) SalesPayload {
	total := f.Quantity * f.UnitPrice
	return SalesPayload{
		CustomerName: &f.CustomerName,
		Product:      &f.Product,
		Quantity:     &f.Quantity,
		UnitPrice:    &f.UnitPrice,
		TotalPrice:   &total,
		Date:         &f.Date,
	}
}

// FilterCriteria holds optional list filters. All fields are pointers to
// distinguish "not set" from an empty pattern; absence means no constraint.
type FilterCriteria struct {
	Date     *string // substring match on the ISO date
	Product  *string // case-insensitive substring match
	Customer *string // case-insensitive substring match
}

// Matches reports whether the record satisfies every set criterion.
func (f FilterCriteria) Matches(r SalesRecord) bool {
	if f.Date != nil && !strings.Contains(r.Date, *f.Date) {
		return false
	}
	if f.Product != nil && !strings.Contains(strings.ToLower(r.Product), strings.ToLower(*f.Product)) {
		return false
	}
	if f.Customer != nil && !strings.Contains(strings.ToLower(r.CustomerName), strings.ToLower(*f.Customer)) {
		return false
	}
	return true
}

// UploadResult is the webhook service's answer to a bulk import.
type UploadResult struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ExportFile is a generated file fetched from the webhook service.
type ExportFile struct {
	Content     []byte
	Filename    string
	ContentType string
}
