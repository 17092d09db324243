package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUploadFile(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		contentType string
		wantErr     bool
	}{
		{
			name:     "csv extension",
			filename: "penjualan.csv",
		},
		{
			name:     "xlsx extension",
			filename: "Data Penjualan.XLSX",
		},
		{
			name:     "xls extension",
			filename: "lama.xls",
		},
		{
			name:        "extension unknown but spreadsheet MIME",
			filename:    "export",
			contentType: "application/vnd.ms-excel",
		},
		{
			name:        "csv MIME with charset parameter",
			filename:    "data",
			contentType: "text/csv; charset=utf-8",
		},
		{
			name:        "image rejected",
			filename:    "foto.png",
			contentType: "image/png",
			wantErr:     true,
		},
		{
			name:     "no extension no type rejected",
			filename: "misterius",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUploadFile(tt.filename, tt.contentType)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFileType)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
