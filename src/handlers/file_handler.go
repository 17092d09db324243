package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/username/penjualan/backend/src/logger"
	"github.com/username/penjualan/backend/src/models"
	"github.com/username/penjualan/backend/src/services"
	"github.com/username/penjualan/backend/src/utils"
)

type FileHandler struct {
	salesService services.SalesService
}

func NewFileHandler(service services.SalesService) *FileHandler {
	return &FileHandler{
		salesService: service,
	}
}

// HandleExport proxies a generated export from the webhook service and
// streams it back as an attachment.
func (h *FileHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "xlsx"
	}
	if format != "csv" && format != "xlsx" {
		utils.SendJSONError(w, "Format tidak didukung. Gunakan csv atau xlsx.", http.StatusBadRequest)
		return
	}

	file, err := h.salesService.ExportFile(r.Context(), format)
	if err != nil {
		logger.L.Error("Error downloading export file", "format", format, "error", err)
		utils.SendJSONError(w, remoteErrorMessage(err), http.StatusBadGateway)
		return
	}

	writeAttachment(w, file)
}

// HandleTemplate serves the locally generated import template.
func (h *FileHandler) HandleTemplate(w http.ResponseWriter, r *http.Request) {
	writeAttachment(w, h.salesService.TemplateFile())
}

func writeAttachment(w http.ResponseWriter, file models.ExportFile) {
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Content)))
	if _, err := w.Write(file.Content); err != nil && logger.L != nil {
		logger.L.Error("Error writing file response", "filename", file.Filename, "error", err)
	}
}
