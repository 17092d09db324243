package services

import (
	"strings"

	"github.com/username/penjualan/backend/src/models"
)

// The import template is a tab-separated plain-text stand-in for a real
// spreadsheet: users fill it in and upload it through the bulk import. The
// sample rows match the ones the web UI has always shipped.
const templateFilename = "template_penjualan.xlsx"

var templateColumns = []string{
	"ID Transaksi", "Nama Pelanggan", "Produk", "Qty", "Harga", "Total Harga", "Tanggal",
}

var templateSampleRows = []string{
	"1001\tBudi Santoso\tProduk A\t2\t100\t200\t11-01-25",
	"1002\tSiti Aminah\tProduk B\t1\t150\t150\t11-02-25",
	"1003\tAndi Wijaya\tProduk C\t5\t75\t375\t11-03-25",
}

func (s *salesServiceImpl) TemplateFile() models.ExportFile {
	var b strings.Builder
	b.WriteString(strings.Join(templateColumns, "\t"))
	b.WriteString("\n")
	b.WriteString(strings.Join(templateSampleRows, "\n"))

	return models.ExportFile{
		Content:     []byte(b.String()),
		Filename:    templateFilename,
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	}
}
