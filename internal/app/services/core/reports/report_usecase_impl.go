package reports

import (
	"bytes"
	"clinica-service/internal/app/contracts"
	"clinica-service/internal/app/models"
	"clinica-service/internal/pkg/constvars"
	"clinica-service/internal/pkg/dto/requests"
	"clinica-service/internal/pkg/dto/responses"
	"clinica-service/internal/pkg/exceptions"
	"clinica-service/internal/pkg/utils"
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

type reportUsecase struct {
	ReportRestClient       contracts.ReportRestClient
	ExportRecordRepository contracts.ExportRecordRepository
	StorageService         contracts.StorageService
	ExportBucket           string
	Log                    *zap.Logger
	Location               *time.Location
	now                    func() time.Time

	fetchToken uint64
	mu         sync.Mutex
	lastReport *responses.Report
}

func NewReportUsecase(
	reportRestClient contracts.ReportRestClient,
	exportRecordRepository contracts.ExportRecordRepository,
	storageService contracts.StorageService,
	exportBucket string,
	logger *zap.Logger,
	location *time.Location,
) contracts.ReportUsecase {
	return &reportUsecase{
		ReportRestClient:       reportRestClient,
		ExportRecordRepository: exportRecordRepository,
		StorageService:         storageService,
		ExportBucket:           exportBucket,
		Log:                    logger,
		Location:               location,
		now:                    time.Now,
	}
}

func (uc *reportUsecase) Fetch(ctx context.Context, query *requests.ReportQuery) (*responses.Report, error) {
	if err := utils.ValidateStruct(query); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	startDate, endDate, err := uc.resolveRange(query)
	if err != nil {
		return nil, err
	}
	view := query.Visualizacao
	if view == "" {
		view = constvars.ReportViewSynthetic
	}

	token := atomic.AddUint64(&uc.fetchToken, 1)
	uc.Log.Info("reportUsecase.Fetch started",
		zap.Uint64(constvars.LoggingFetchTokenKey, token),
		zap.String(constvars.LoggingFilterStartKey, startDate),
		zap.String(constvars.LoggingFilterEndKey, endDate),
	)

	buckets, err := uc.ReportRestClient.FetchBuckets(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	report := uc.buildReport(view, startDate, endDate, buckets)

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if token != atomic.LoadUint64(&uc.fetchToken) {
		uc.Log.Info("reportUsecase.Fetch discarded stale response",
			zap.Uint64(constvars.LoggingFetchTokenKey, token),
		)
		if uc.lastReport != nil {
			return uc.lastReport, nil
		}
		return report, nil
	}
	uc.lastReport = report
	return report, nil
}

// Export renders the current dataset as a CSV file, archives a copy in
// object storage, and records the export for auditing. An empty dataset is
// refused so users never download a header-only file.
func (uc *reportUsecase) Export(ctx context.Context, query *requests.ReportQuery) (*contracts.ReportExport, error) {
	if err := utils.ValidateStruct(query); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	startDate, endDate, err := uc.resolveRange(query)
	if err != nil {
		return nil, err
	}
	view := query.Visualizacao
	if view == "" {
		view = constvars.ReportViewSynthetic
	}

	buckets, err := uc.ReportRestClient.FetchBuckets(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}
	if len(buckets) == 0 {
		return nil, exceptions.ErrReportNothingToExport()
	}

	content, total, err := buildCSV(view, buckets)
	if err != nil {
		return nil, err
	}
	fileName := fmt.Sprintf(constvars.ReportFileNamePattern, startDate, endDate)

	if err := uc.StorageService.UploadObject(ctx, uc.ExportBucket, fileName, constvars.MIMETextCSV, content); err != nil {
		return nil, err
	}

	record := &models.ExportRecord{
		ID:           utils.GenerateExportRecordID(),
		FileName:     fileName,
		DataInicial:  startDate,
		DataFinal:    endDate,
		Visualizacao: view,
		RowCount:     len(buckets),
		Total:        total,
		ExportedAt:   uc.now(),
	}
	if err := uc.ExportRecordRepository.Insert(ctx, record); err != nil {
		return nil, err
	}

	uc.Log.Info("reportUsecase.Export succeeded",
		zap.String(constvars.LoggingExportFileNameKey, fileName),
		zap.Int("row_count", len(buckets)),
	)
	return &contracts.ReportExport{FileName: fileName, Content: content}, nil
}

func (uc *reportUsecase) ExportHistory(ctx context.Context) ([]models.ExportRecord, error) {
	return uc.ExportRecordRepository.FindAll(ctx)
}

// resolveRange defaults both bounds to [Jan 1 of the current year, today]
// when the query is fully open; a half-filled range is rejected.
func (uc *reportUsecase) resolveRange(query *requests.ReportQuery) (string, string, error) {
	if query.DataInicial == "" && query.DataFinal == "" {
		today := uc.now().In(uc.Location)
		return utils.StartOfYear(today).Format(time.DateOnly), today.Format(time.DateOnly), nil
	}
	if query.DataInicial == "" || query.DataFinal == "" {
		return "", "", exceptions.ErrReportRangeRequired()
	}
	return query.DataInicial, query.DataFinal, nil
}

func (uc *reportUsecase) buildReport(view, startDate, endDate string, buckets []models.ReportBucket) *responses.Report {
	report := &responses.Report{
		Visualizacao: view,
		DataInicial:  startDate,
		DataFinal:    endDate,
	}

	for _, bucket := range buckets {
		report.Total += bucket.Quantidade
		label := formatBucketDay(bucket.Dia)
		if view == constvars.ReportViewAnalytic {
			report.Grafico = append(report.Grafico, responses.ChartBar{Label: label, Value: bucket.Quantidade})
		} else {
			report.Linhas = append(report.Linhas, responses.ReportRow{Dia: label, Quantidade: bucket.Quantidade})
		}
	}
	return report
}

func buildCSV(view string, buckets []models.ReportBucket) ([]byte, int64, error) {
	header := constvars.ReportCSVHeaderDaily
	if view == constvars.ReportViewAnalytic {
		header = constvars.ReportCSVHeaderPeriod
	}

	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)

	if err := writer.Write(strings.Split(header, ",")); err != nil {
		return nil, 0, exceptions.ErrCannotMarshalJSON(err)
	}

	var total int64
	for _, bucket := range buckets {
		total += bucket.Quantidade
		row := []string{formatBucketDay(bucket.Dia), fmt.Sprintf("%d", bucket.Quantidade)}
		if err := writer.Write(row); err != nil {
			return nil, 0, exceptions.ErrCannotMarshalJSON(err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, 0, exceptions.ErrCannotMarshalJSON(err)
	}

	return buffer.Bytes(), total, nil
}

// formatBucketDay rewrites a backend day (YYYY-MM-DD) into the display
// format. Values the backend sends in another shape pass through untouched.
func formatBucketDay(day string) string {
	parsed, err := time.Parse(time.DateOnly, day)
	if err != nil {
		return day
	}
	return parsed.Format(constvars.DisplayDateLayout)
}
