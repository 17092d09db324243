package validation

import (
	"errors"
	"path/filepath"
	"strings"
)

// ErrInvalidFileType is returned for uploads that are not spreadsheets.
// The message is shown to the user as-is.
var ErrInvalidFileType = errors.New("Format file tidak valid. Hanya menerima CSV, XLS, atau XLSX")

var allowedUploadExtensions = map[string]bool{
	".csv":  true,
	".xls":  true,
	".xlsx": true,
}

// allowedUploadContentTypes is a lookup of acceptable client-declared MIME
// types. Generic types like application/octet-stream deliberately fail
// here; such files only pass when their extension identifies them.
var allowedUploadContentTypes = map[string]bool{
	"text/csv":                 true,
	"application/csv":          true,
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
}

// ValidateUploadFile accepts a file when either its extension or its
// client-declared Content-Type identifies a spreadsheet.
func ValidateUploadFile(filename, contentType string) error {
	if allowedUploadExtensions[strings.ToLower(filepath.Ext(filename))] {
		return nil
	}
	normalized := strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	if allowedUploadContentTypes[normalized] {
		return nil
	}
	return ErrInvalidFileType
}
