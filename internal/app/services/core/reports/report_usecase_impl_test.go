package reports

import (
	"clinica-service/internal/app/models"
	"clinica-service/internal/pkg/constvars"
	"clinica-service/internal/pkg/dto/requests"
	"clinica-service/internal/pkg/exceptions"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

var testLocation = time.FixedZone("-03", -3*60*60)

type stubReportClient struct {
	gotStart string
	gotEnd   string
	buckets  []models.ReportBucket
}

func (s *stubReportClient) FetchBuckets(ctx context.Context, startDate, endDate string) ([]models.ReportBucket, error) {
	s.gotStart = startDate
	s.gotEnd = endDate
	return s.buckets, nil
}

type memoryExportRepository struct {
	records []models.ExportRecord
}

func (m *memoryExportRepository) Insert(ctx context.Context, record *models.ExportRecord) error {
	m.records = append(m.records, *record)
	return nil
}

func (m *memoryExportRepository) FindAll(ctx context.Context) ([]models.ExportRecord, error) {
	return m.records, nil
}

type recordingStorage struct {
	bucketName  string
	fileName    string
	contentType string
	content     []byte
}

func (r *recordingStorage) UploadObject(ctx context.Context, bucketName, fileName, contentType string, content []byte) error {
	r.bucketName = bucketName
	r.fileName = fileName
	r.contentType = contentType
	r.content = content
	return nil
}

type reportFixture struct {
	usecase    *reportUsecase
	client     *stubReportClient
	repository *memoryExportRepository
	storage    *recordingStorage
}

func newReportFixture(buckets []models.ReportBucket) *reportFixture {
	client := &stubReportClient{buckets: buckets}
	repository := &memoryExportRepository{}
	storage := &recordingStorage{}

	usecase := &reportUsecase{
		ReportRestClient:       client,
		ExportRecordRepository: repository,
		StorageService:         storage,
		ExportBucket:           "report-exports",
		Log:                    zap.NewNop(),
		Location:               testLocation,
		now:                    func() time.Time { return time.Date(2024, 6, 15, 10, 0, 0, 0, testLocation) },
	}
	return &reportFixture{usecase: usecase, client: client, repository: repository, storage: storage}
}

func clientMessage(t *testing.T, err error) string {
	t.Helper()
	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	return customErr.ClientMessage
}

func TestReportUsecase_Fetch(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty range defaults to January first through today", func(t *testing.T) {
		fixture := newReportFixture(nil)

		report, err := fixture.usecase.Fetch(ctx, &requests.ReportQuery{})

		assert.NoError(t, err)
		assert.Equal(t, "2024-01-01", fixture.client.gotStart)
		assert.Equal(t, "2024-06-15", fixture.client.gotEnd)
		assert.Equal(t, constvars.ReportViewSynthetic, report.Visualizacao)
		assert.Zero(t, report.Total)
	})

	t.Run("Half-filled range is rejected", func(t *testing.T) {
		fixture := newReportFixture(nil)

		_, err := fixture.usecase.Fetch(ctx, &requests.ReportQuery{DataInicial: "2024-06-01"})

		assert.Equal(t, constvars.ErrClientReportRangeRequired, clientMessage(t, err))
	})

	t.Run("Synthetic view sums rows with display dates", func(t *testing.T) {
		fixture := newReportFixture([]models.ReportBucket{
			{Dia: "2024-06-10", Quantidade: 3},
			{Dia: "2024-06-11", Quantidade: 5},
		})

		report, err := fixture.usecase.Fetch(ctx, &requests.ReportQuery{
			DataInicial: "2024-06-10",
			DataFinal:   "2024-06-11",
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(8), report.Total)
		assert.Len(t, report.Linhas, 2)
		assert.Empty(t, report.Grafico)
		assert.Equal(t, "10/06/2024", report.Linhas[0].Dia)
		assert.Equal(t, int64(3), report.Linhas[0].Quantidade)
	})

	t.Run("Analytic view produces chart bars instead of rows", func(t *testing.T) {
		fixture := newReportFixture([]models.ReportBucket{
			{Dia: "2024-06-10", Quantidade: 3},
		})

		report, err := fixture.usecase.Fetch(ctx, &requests.ReportQuery{
			DataInicial:  "2024-06-10",
			DataFinal:    "2024-06-11",
			Visualizacao: constvars.ReportViewAnalytic,
		})

		assert.NoError(t, err)
		assert.Empty(t, report.Linhas)
		assert.Len(t, report.Grafico, 1)
		assert.Equal(t, "10/06/2024", report.Grafico[0].Label)
		assert.Equal(t, int64(3), report.Grafico[0].Value)
	})
}

func TestReportUsecase_Export(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty dataset refuses to export", func(t *testing.T) {
		fixture := newReportFixture(nil)

		_, err := fixture.usecase.Export(ctx, &requests.ReportQuery{
			DataInicial: "2024-06-01",
			DataFinal:   "2024-06-15",
		})

		assert.Equal(t, constvars.ErrClientReportNothingToExport, clientMessage(t, err))
		assert.Empty(t, fixture.storage.fileName, "nothing should reach object storage")
		assert.Empty(t, fixture.repository.records)
	})

	t.Run("Synthetic export builds CSV, archives it and records the audit entry", func(t *testing.T) {
		fixture := newReportFixture([]models.ReportBucket{
			{Dia: "2024-06-10", Quantidade: 3},
			{Dia: "2024-06-11", Quantidade: 5},
		})

		export, err := fixture.usecase.Export(ctx, &requests.ReportQuery{
			DataInicial: "2024-06-10",
			DataFinal:   "2024-06-11",
		})

		assert.NoError(t, err)
		assert.Equal(t, "relatorio_agendamentos_2024-06-10_2024-06-11.csv", export.FileName)
		assert.Equal(t, "Data,Quantidade\n10/06/2024,3\n11/06/2024,5\n", string(export.Content))

		assert.Equal(t, "report-exports", fixture.storage.bucketName)
		assert.Equal(t, export.FileName, fixture.storage.fileName)
		assert.Equal(t, constvars.MIMETextCSV, fixture.storage.contentType)
		assert.Equal(t, export.Content, fixture.storage.content)

		assert.Len(t, fixture.repository.records, 1)
		record := fixture.repository.records[0]
		assert.Equal(t, export.FileName, record.FileName)
		assert.Equal(t, 2, record.RowCount)
		assert.Equal(t, int64(8), record.Total)
		assert.Equal(t, constvars.ReportViewSynthetic, record.Visualizacao)
	})

	t.Run("Analytic export uses the period header", func(t *testing.T) {
		fixture := newReportFixture([]models.ReportBucket{
			{Dia: "2024-06-10", Quantidade: 3},
		})

		export, err := fixture.usecase.Export(ctx, &requests.ReportQuery{
			DataInicial:  "2024-06-10",
			DataFinal:    "2024-06-11",
			Visualizacao: constvars.ReportViewAnalytic,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Período,Quantidade\n10/06/2024,3\n", string(export.Content))
	})
}
