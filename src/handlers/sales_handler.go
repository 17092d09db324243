package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"
	"github.com/username/penjualan/backend/src/gateway"
	"github.com/username/penjualan/backend/src/logger"
	"github.com/username/penjualan/backend/src/models"
	"github.com/username/penjualan/backend/src/services"
	"github.com/username/penjualan/backend/src/utils"
	"github.com/username/penjualan/backend/src/validation"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type SalesHandler struct {
	salesService services.SalesService
}

func NewSalesHandler(service services.SalesService) *SalesHandler {
	return &SalesHandler{
		salesService: service,
	}
}

// HandleListSales serves the record list, optionally filtered via the
// tanggal/produk/pelanggan query parameters, with ETag support.
func (h *SalesHandler) HandleListSales(w http.ResponseWriter, r *http.Request) {
	filter := filterFromQuery(r)

	records, err := h.salesService.ListSales(r.Context(), filter)
	if err != nil {
		logger.L.Error("Error retrieving sales list", "error", err)
		utils.SendJSONError(w, remoteErrorMessage(err), http.StatusBadGateway)
		return
	}

	w.Header().Set("Cache-Control", "no-cache, private")
	if etag, etagErr := utils.GenerateETag(records); etagErr == nil && etag != "" {
		quotedETag := fmt.Sprintf("%q", etag)
		w.Header().Set("ETag", quotedETag)
		for _, clientETag := range strings.Split(r.Header.Get("If-None-Match"), ",") {
			if strings.TrimSpace(clientETag) == quotedETag {
				w.WriteHeader(http.StatusNotModified)
				return
			}
		}
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Data penjualan berhasil dimuat",
		Data:    records,
	})
}

func (h *SalesHandler) HandleCreateSales(w http.ResponseWriter, r *http.Request) {
	var form models.SalesForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		logger.L.Warn("Invalid create request body", "error", err)
		utils.SendJSONError(w, "Permintaan tidak valid", http.StatusBadRequest)
		return
	}

	record, err := h.salesService.CreateSales(r.Context(), form)
	if err != nil {
		h.respondMutationError(w, err, "menambah")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "Data penjualan berhasil ditambahkan!",
		Data:    record,
	})
}

func (h *SalesHandler) HandleUpdateSales(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		utils.SendJSONError(w, "ID transaksi wajib diisi", http.StatusBadRequest)
		return
	}

	var form models.SalesForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		logger.L.Warn("Invalid update request body", "id", id, "error", err)
		utils.SendJSONError(w, "Permintaan tidak valid", http.StatusBadRequest)
		return
	}

	record, err := h.salesService.UpdateSales(r.Context(), id, form)
	if err != nil {
		h.respondMutationError(w, err, "mengupdate")
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Data penjualan berhasil diupdate!",
		Data:    record,
	})
}

func (h *SalesHandler) HandleDeleteSales(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		utils.SendJSONError(w, "ID transaksi wajib diisi", http.StatusBadRequest)
		return
	}

	if err := h.salesService.DeleteSales(r.Context(), id); err != nil {
		logger.L.Error("Error deleting sales record", "id", id, "error", err)
		utils.SendJSONError(w, remoteErrorMessage(err), http.StatusBadGateway)
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Data penjualan berhasil dihapus!",
	})
}

func (h *SalesHandler) respondMutationError(w http.ResponseWriter, err error, action string) {
	var fieldErrors validation.Errors
	if errors.As(err, &fieldErrors) {
		utils.WriteJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error":  "Validasi gagal",
			"fields": fieldErrors,
		})
		return
	}
	logger.L.Error("Error from webhook service", "action", action, "error", err)
	utils.SendJSONError(w, remoteErrorMessage(err), http.StatusBadGateway)
}

func filterFromQuery(r *http.Request) models.FilterCriteria {
	var filter models.FilterCriteria
	if v := strings.TrimSpace(r.URL.Query().Get("tanggal")); v != "" {
		filter.Date = &v
	}
	if v := strings.TrimSpace(r.URL.Query().Get("produk")); v != "" {
		filter.Product = &v
	}
	if v := strings.TrimSpace(r.URL.Query().Get("pelanggan")); v != "" {
		filter.Customer = &v
	}
	return filter
}

// remoteErrorMessage reduces a gateway error chain to the generic
// user-facing message for its action.
func remoteErrorMessage(err error) string {
	for _, sentinel := range []error{
		gateway.ErrFetchFailed,
		gateway.ErrCreateFailed,
		gateway.ErrUpdateFailed,
		gateway.ErrDeleteFailed,
		gateway.ErrUploadFailed,
		gateway.ErrDownloadFailed,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return "Terjadi kesalahan internal"
}
