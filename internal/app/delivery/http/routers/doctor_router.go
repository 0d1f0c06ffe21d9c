package routers

import (
	"clinica-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, doctorController *controllers.DoctorController) {
	router.Get("/", doctorController.FindAll)
	router.Post("/", doctorController.Create)
	router.Put("/{medico_id}", doctorController.Update)
	router.Delete("/{medico_id}", doctorController.Delete)
}
