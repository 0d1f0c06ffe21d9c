package routers

import (
	"clinica-service/internal/app/config"
	"clinica-service/internal/app/delivery/http/controllers"
	"clinica-service/internal/app/delivery/http/middlewares"
	"fmt"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	appMiddlewares *middlewares.Middlewares,
	patientController *controllers.PatientController,
	doctorController *controllers.DoctorController,
	healthPlanController *controllers.HealthPlanController,
	appointmentController *controllers.AppointmentController,
	reportController *controllers.ReportController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(appMiddlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/pacientes", func(r chi.Router) {
				attachPatientRoutes(r, patientController)
			})

			r.Route("/medicos", func(r chi.Router) {
				attachDoctorRoutes(r, doctorController)
			})

			r.Route("/planos_saude", func(r chi.Router) {
				attachHealthPlanRoutes(r, healthPlanController)
			})

			r.Route("/agendamentos", func(r chi.Router) {
				attachAppointmentRoutes(r, appointmentController)
			})

			// Reports aggregate on the backend, so repeated refreshes are
			// costly; abusive clients get blocked for a while instead of
			// just throttled.
			reportRateLimiter := middlewares.NewRateLimiter(
				internalConfig.App.MaxRequests,
				time.Second,
				time.Duration(internalConfig.App.RateLimitBlockTimeInSeconds)*time.Second,
			)
			r.Route("/relatorios", func(r chi.Router) {
				r.Use(reportRateLimiter.Limit)
				attachReportRoutes(r, reportController)
			})
		})
	})
}
