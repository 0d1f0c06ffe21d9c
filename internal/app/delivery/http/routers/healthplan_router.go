package routers

import (
	"clinica-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachHealthPlanRoutes(router chi.Router, healthPlanController *controllers.HealthPlanController) {
	router.Post("/", healthPlanController.Create)
	router.Get("/{plano_id}", healthPlanController.FindByID)
	router.Put("/{plano_id}", healthPlanController.Update)
}
