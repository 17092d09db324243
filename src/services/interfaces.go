package services

import (
	"context"
	"io"

	"github.com/username/penjualan/backend/src/models"
)

// SalesGateway is the outbound facade over the webhook service. Satisfied
// by *gateway.Client; faked in tests.
type SalesGateway interface {
	List(ctx context.Context) ([]models.SalesRecord, error)
	Create(ctx context.Context, payload models.SalesPayload) (models.SalesRecord, error)
	Update(ctx context.Context, id string, payload models.SalesPayload) (models.SalesRecord, error)
	Delete(ctx context.Context, id string) error
	UploadFile(ctx context.Context, filename string, file io.Reader) (models.UploadResult, error)
	DownloadFile(ctx context.Context, format string) (models.ExportFile, error)
}

// SalesService defines the core sales operations the handlers consume.
type SalesService interface {
	ListSales(ctx context.Context, filter models.FilterCriteria) ([]models.SalesRecord, error)
	CreateSales(ctx context.Context, form models.SalesForm) (models.SalesRecord, error)
	UpdateSales(ctx context.Context, id string, form models.SalesForm) (models.SalesRecord, error)
	DeleteSales(ctx context.Context, id string) error
	ImportFile(ctx context.Context, filename string, file io.Reader) (models.UploadResult, error)
	ExportFile(ctx context.Context, format string) (models.ExportFile, error)
	TemplateFile() models.ExportFile
}
