package routers

import (
	"clinica-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, appointmentController *controllers.AppointmentController) {
	router.Get("/", appointmentController.List)
	router.Delete("/filtros", appointmentController.ClearFilters)

	router.Route("/formulario", func(r chi.Router) {
		r.Post("/", appointmentController.OpenForm)
		r.Get("/{session_id}", appointmentController.GetForm)
		r.Put("/{session_id}/paciente", appointmentController.SelectPatient)
		r.Post("/{session_id}/submeter", appointmentController.SubmitForm)
		r.Delete("/{session_id}", appointmentController.DismissForm)
	})
}
