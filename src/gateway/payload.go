package gateway

import (
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/username/penjualan/backend/src/models"
	"github.com/username/penjualan/backend/src/parsers"
	"github.com/username/penjualan/backend/src/utils"
)

var (
	wireDateRe = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)
	isoDateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// EncodePayload converts a partial record into the form body the webhook
// service's write endpoints expect. Only fields present in the partial are
// included; numeric fields only when finite.
func EncodePayload(p models.SalesPayload) url.Values {
	params := url.Values{}

	if p.CustomerName != nil {
		params.Set("namaPelanggan", *p.CustomerName)
	}
	if p.Product != nil {
		params.Set("produk", *p.Product)
	}
	if p.Quantity != nil && isFinite(*p.Quantity) {
		params.Set("qty", formatNumber(*p.Quantity))
	}
	if p.UnitPrice != nil && isFinite(*p.UnitPrice) {
		params.Set("harga", formatNumber(*p.UnitPrice))
	}

	// An explicit finite total wins; otherwise derive it when both factors
	// are present; otherwise leave it out entirely.
	if p.TotalPrice != nil && isFinite(*p.TotalPrice) {
		params.Set("totalHarga", formatNumber(*p.TotalPrice))
	} else if p.Quantity != nil && p.UnitPrice != nil {
		if total := *p.Quantity * *p.UnitPrice; isFinite(total) {
			params.Set("totalHarga", formatNumber(total))
		}
	}

	if p.Date != nil {
		if wire := FormatWireDate(*p.Date); wire != "" {
			params.Set("tanggal", wire)
		}
	}

	return params
}

// FormatWireDate transcodes a date string into the DD-MM-YYYY wire layout.
// Already-wire input passes through, ISO input is transposed, and anything
// else gets a best-effort re-parse, falling back to the original trimmed
// string when nothing date-like can be made of it.
func FormatWireDate(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}
	if wireDateRe.MatchString(trimmed) {
		return trimmed
	}
	if isoDateRe.MatchString(trimmed) {
		parts := strings.SplitN(trimmed, "-", 3)
		return parts[2] + "-" + parts[1] + "-" + parts[0]
	}
	if iso := parsers.ParseDateValue(trimmed); iso != "" {
		if t, err := time.Parse(utils.ISODateFormat, iso); err == nil {
			return t.Format(utils.WireDateFormat)
		}
	}
	return trimmed
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
