package handlers

import (
	"fmt"
	"net/http"

	"github.com/username/penjualan/backend/src/config"
	"github.com/username/penjualan/backend/src/logger"
	"github.com/username/penjualan/backend/src/services"
	"github.com/username/penjualan/backend/src/utils"
	"github.com/username/penjualan/backend/src/validation"
)

type UploadHandler struct {
	salesService services.SalesService
}

func NewUploadHandler(service services.SalesService) *UploadHandler {
	return &UploadHandler{
		salesService: service,
	}
}

// HandleUpload accepts a spreadsheet via multipart form field "file",
// validates it locally and forwards it to the webhook service for bulk
// import.
func (h *UploadHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	maxUploadSize := config.Cfg.MaxUploadSizeBytes

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		logger.L.Warn("Failed to parse multipart form or request too large", "error", err, "limit", maxUploadSize)
		utils.SendJSONError(w, fmt.Sprintf("Gagal membaca form atau file terlalu besar (maks %d MB)", maxUploadSize/(1024*1024)), http.StatusBadRequest)
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		logger.L.Warn("Failed to retrieve file from request", "error", err)
		utils.SendJSONError(w, "File tidak ditemukan pada permintaan. Gunakan field 'file'.", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if fileHeader.Size > maxUploadSize {
		logger.L.Warn("Uploaded file header reports size too large", "fileSize", fileHeader.Size, "limit", maxUploadSize)
		utils.SendJSONError(w, fmt.Sprintf("File terlalu besar, maks %d MB", maxUploadSize/(1024*1024)), http.StatusBadRequest)
		return
	}

	clientContentType := fileHeader.Header.Get("Content-Type")
	if err := validation.ValidateUploadFile(fileHeader.Filename, clientContentType); err != nil {
		logger.L.Warn("Invalid upload file type", "filename", fileHeader.Filename, "contentType", clientContentType)
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	logger.L.Info("Forwarding upload to webhook service", "filename", fileHeader.Filename, "size", fileHeader.Size)
	result, err := h.salesService.ImportFile(r.Context(), fileHeader.Filename, file)
	if err != nil {
		logger.L.Error("Error importing sales file", "filename", fileHeader.Filename, "error", err)
		message := remoteErrorMessage(err)
		if result.Message != "" {
			message = result.Message
		}
		utils.SendJSONError(w, message, http.StatusBadGateway)
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "File berhasil diupload dan data telah diproses!",
		Data:    result,
	})
}
