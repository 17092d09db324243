package utils

import "time"

const (
	// ISODateFormat is the canonical in-memory date layout.
	ISODateFormat = "2006-01-02"
	// WireDateFormat is the DD-MM-YYYY layout the webhook service expects.
	WireDateFormat = "02-01-2006"
)

// TodayISO returns the current date in the canonical ISO layout.
func TodayISO() string {
	return time.Now().UTC().Format(ISODateFormat)
}
