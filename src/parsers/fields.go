package parsers

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/username/penjualan/backend/src/utils"
)

// The webhook service feeds rows straight out of spreadsheets and workflow
// nodes, so every field can arrive as a number, a formatted string, or
// nothing at all. These parsers are total: they always produce a value and
// never return an error.

var (
	nonNumericRe = regexp.MustCompile(`[^\d.-]`)
	digitsOnlyRe = regexp.MustCompile(`^\d+$`)
	shortDateRe  = regexp.MustCompile(`^\d{2}-\d{2}-\d{2}$`)
)

// spreadsheetEpoch anchors the common spreadsheet date system, in which
// dates are encoded as a day count from 1899-12-30.
var spreadsheetEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// dateLayouts are tried in order by the generic parsing fallback. The wire
// layout comes right after ISO so a DD-MM-YYYY echo from the webhook
// service is never read as MM-DD.
var dateLayouts = []string{
	utils.ISODateFormat,
	utils.WireDateFormat,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
}

// ParseNumber converts an arbitrary remote-sourced value into a float64.
// Strings are stripped down to digits, '.' and '-' before parsing.
// Anything unparseable yields 0.
func ParseNumber(value interface{}) float64 {
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		return v
	case float32:
		return ParseNumber(float64(v))
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		cleaned := nonNumericRe.ReplaceAllString(v, "")
		if cleaned == "" {
			return 0
		}
		parsed, err := strconv.ParseFloat(cleaned, 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return 0
		}
		return parsed
	}
	return 0
}

// ParseString converts an arbitrary value into a trimmed string,
// substituting fallback for nil and for values that trim to nothing.
func ParseString(value interface{}, fallback string) string {
	if value == nil {
		return fallback
	}
	text := strings.TrimSpace(stringify(value))
	if text == "" {
		return fallback
	}
	return text
}

func stringify(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// ParseDateValue converts an arbitrary value into an ISO YYYY-MM-DD date
// string, or "" when nothing date-like can be extracted. Callers must
// supply their own fallback when empty is unacceptable.
//
// Numbers (and all-digit strings) are read as spreadsheet date serials.
// DD-MM-YY strings get their year expanded by 2000. Other strings go
// through the known layouts; when none match, the trimmed input is passed
// through unchanged rather than erroring.
func ParseDateValue(value interface{}) string {
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ""
		}
		return serialToISO(v)
	case float32:
		return ParseDateValue(float64(v))
	case int:
		return serialToISO(float64(v))
	case int64:
		return serialToISO(float64(v))
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return ""
		}
		if digitsOnlyRe.MatchString(trimmed) {
			serial, err := strconv.ParseFloat(trimmed, 64)
			if err != nil {
				return trimmed
			}
			return serialToISO(serial)
		}
		if shortDateRe.MatchString(trimmed) {
			return shortDateToISO(trimmed)
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, trimmed); err == nil {
				return t.Format(utils.ISODateFormat)
			}
		}
		return trimmed
	}
	return ""
}

func serialToISO(serial float64) string {
	days := int(serial)
	frac := serial - float64(days)
	t := spreadsheetEpoch.AddDate(0, 0, days).Add(time.Duration(frac * float64(24*time.Hour)))
	if t.Year() < 0 || t.Year() > 9999 {
		return ""
	}
	return t.Format(utils.ISODateFormat)
}

// shortDateToISO expands DD-MM-YY to a full date, assuming years 20xx.
func shortDateToISO(s string) string {
	parts := strings.Split(s, "-")
	day, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	year, _ := strconv.Atoi(parts[2])
	if year < 100 {
		year += 2000
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Format(utils.ISODateFormat)
}
