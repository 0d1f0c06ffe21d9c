package routers

import (
	"clinica-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachReportRoutes(router chi.Router, reportController *controllers.ReportController) {
	router.Get("/agendamentos", reportController.Fetch)
	router.Get("/agendamentos/exportar", reportController.Export)
	router.Get("/exportacoes", reportController.ExportHistory)
}
