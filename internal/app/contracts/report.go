package contracts

import (
	"clinica-service/internal/app/models"
	"clinica-service/internal/pkg/dto/requests"
	"clinica-service/internal/pkg/dto/responses"
	"context"
)

type ReportRestClient interface {
	FetchBuckets(ctx context.Context, startDate, endDate string) ([]models.ReportBucket, error)
}

// ReportExport bundles the generated artifact with its metadata.
type ReportExport struct {
	FileName string
	Content  []byte
}

type ReportUsecase interface {
	// Fetch defaults the range to [Jan 1 of the current year, today] when
	// both bounds are empty, mirroring the report panel's opening state.
	Fetch(ctx context.Context, query *requests.ReportQuery) (*responses.Report, error)
	Export(ctx context.Context, query *requests.ReportQuery) (*ReportExport, error)
	ExportHistory(ctx context.Context) ([]models.ExportRecord, error)
}

type ExportRecordRepository interface {
	Insert(ctx context.Context, record *models.ExportRecord) error
	FindAll(ctx context.Context) ([]models.ExportRecord, error)
}
