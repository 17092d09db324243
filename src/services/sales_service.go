package services

import (
	"context"
	"io"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/username/penjualan/backend/src/logger"
	"github.com/username/penjualan/backend/src/models"
	"github.com/username/penjualan/backend/src/validation"
)

const (
	// ckSalesList holds the full normalized record list. Every successful
	// mutation deletes it, so the next list is a full remote reload; the
	// list is always replaced wholesale, never merged.
	ckSalesList = "sales_list"

	DefaultCacheExpiration = 1 * time.Minute
	CacheCleanupInterval   = 5 * time.Minute
)

type salesServiceImpl struct {
	gateway   SalesGateway
	listCache *cache.Cache
}

func NewSalesService(gateway SalesGateway, listCache *cache.Cache) SalesService {
	return &salesServiceImpl{
		gateway:   gateway,
		listCache: listCache,
	}
}

func (s *salesServiceImpl) ListSales(ctx context.Context, filter models.FilterCriteria) ([]models.SalesRecord, error) {
	records, err := s.loadSales(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.SalesRecord, 0, len(records))
	for _, record := range records {
		if filter.Matches(record) {
			filtered = append(filtered, record)
		}
	}
	return filtered, nil
}

func (s *salesServiceImpl) loadSales(ctx context.Context) ([]models.SalesRecord, error) {
	if cached, found := s.listCache.Get(ckSalesList); found {
		if records, ok := cached.([]models.SalesRecord); ok {
			logger.L.Debug("Serving sales list from cache", "count", len(records))
			return records, nil
		}
	}

	records, err := s.gateway.List(ctx)
	if err != nil {
		return nil, err
	}
	s.listCache.Set(ckSalesList, records, cache.DefaultExpiration)
	logger.L.Info("Sales list fetched from webhook service", "count", len(records))
	return records, nil
}

func (s *salesServiceImpl) CreateSales(ctx context.Context, form models.SalesForm) (models.SalesRecord, error) {
	if errs := validation.ValidateSalesForm(form); len(errs) > 0 {
		return models.SalesRecord{}, errs
	}

	record, err := s.gateway.Create(ctx, models.PayloadFromForm(form))
	if err != nil {
		return models.SalesRecord{}, err
	}
	s.invalidateList()
	logger.L.Info("Sales record created", "transactionId", record.TransactionID)
	return record, nil
}

func (s *salesServiceImpl) UpdateSales(ctx context.Context, id string, form models.SalesForm) (models.SalesRecord, error) {
	if errs := validation.ValidateSalesForm(form); len(errs) > 0 {
		return models.SalesRecord{}, errs
	}

	record, err := s.gateway.Update(ctx, id, models.PayloadFromForm(form))
	if err != nil {
		return models.SalesRecord{}, err
	}
	s.invalidateList()
	logger.L.Info("Sales record updated", "transactionId", id)
	return record, nil
}

func (s *salesServiceImpl) DeleteSales(ctx context.Context, id string) error {
	if err := s.gateway.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateList()
	logger.L.Info("Sales record deleted", "transactionId", id)
	return nil
}

func (s *salesServiceImpl) ImportFile(ctx context.Context, filename string, file io.Reader) (models.UploadResult, error) {
	result, err := s.gateway.UploadFile(ctx, filename, file)
	if err != nil {
		return result, err
	}
	s.invalidateList()
	logger.L.Info("Sales file imported", "filename", filename, "status", result.Status)
	return result, nil
}

func (s *salesServiceImpl) ExportFile(ctx context.Context, format string) (models.ExportFile, error) {
	return s.gateway.DownloadFile(ctx, format)
}

func (s *salesServiceImpl) invalidateList() {
	s.listCache.Delete(ckSalesList)
}
