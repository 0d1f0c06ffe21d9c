package controllers

import (
	"clinica-service/internal/app/contracts"
	"clinica-service/internal/pkg/constvars"
	"clinica-service/internal/pkg/dto/requests"
	"clinica-service/internal/pkg/exceptions"
	"clinica-service/internal/pkg/utils"
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

type ReportController struct {
	Log           *zap.Logger
	ReportUsecase contracts.ReportUsecase
}

var (
	reportControllerInstance *ReportController
	onceReportController     sync.Once
)

func NewReportController(logger *zap.Logger, reportUsecase contracts.ReportUsecase) *ReportController {
	onceReportController.Do(func() {
		reportControllerInstance = &ReportController{
			Log:           logger,
			ReportUsecase: reportUsecase,
		}
	})
	return reportControllerInstance
}

func reportQueryFromRequest(r *http.Request) *requests.ReportQuery {
	return &requests.ReportQuery{
		DataInicial:  r.URL.Query().Get(constvars.URLQueryParamStartDate),
		DataFinal:    r.URL.Query().Get(constvars.URLQueryParamEndDate),
		Visualizacao: r.URL.Query().Get(constvars.URLQueryParamView),
	}
}

func (ctrl *ReportController) Fetch(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	report, err := ctrl.ReportUsecase.Fetch(ctx, reportQueryFromRequest(r))
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReportFetchSuccess, report)
}

// Export streams the generated CSV as a download. Errors, including the
// empty-dataset refusal, come back as the regular JSON envelope.
func (ctrl *ReportController) Export(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	export, err := ctrl.ReportUsecase.Export(ctx, reportQueryFromRequest(r))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("Report export download",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingExportFileNameKey, export.FileName),
	)

	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextCSV)
	w.Header().Set(constvars.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", export.FileName))
	w.WriteHeader(constvars.StatusOK)
	w.Write(export.Content)
}

func (ctrl *ReportController) ExportHistory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	records, err := ctrl.ReportUsecase.ExportHistory(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReportExportHistorySuccess, records)
}
