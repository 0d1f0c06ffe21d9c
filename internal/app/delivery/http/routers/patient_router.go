package routers

import (
	"clinica-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, patientController *controllers.PatientController) {
	router.Get("/", patientController.FindAll)
	router.Post("/", patientController.Create)
	router.Get("/{paciente_id}", patientController.FindByID)
	router.Put("/{paciente_id}", patientController.Update)
	router.Delete("/{paciente_id}", patientController.Delete)
	router.Put("/{paciente_id}/plano", patientController.SetPlan)
}
