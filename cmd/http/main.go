package main

import (
	"clinica-service/internal/app/config"
	"clinica-service/internal/app/delivery/http/controllers"
	"clinica-service/internal/app/delivery/http/middlewares"
	"clinica-service/internal/app/delivery/http/routers"
	"clinica-service/internal/app/drivers/database"
	"clinica-service/internal/app/drivers/logger"
	"clinica-service/internal/app/drivers/messaging"
	"clinica-service/internal/app/drivers/storage"
	rest_appointments "clinica-service/internal/app/services/clinic_rest/appointments"
	rest_doctors "clinica-service/internal/app/services/clinic_rest/doctors"
	rest_healthplans "clinica-service/internal/app/services/clinic_rest/healthplans"
	rest_patients "clinica-service/internal/app/services/clinic_rest/patients"
	rest_reports "clinica-service/internal/app/services/clinic_rest/reports"
	"clinica-service/internal/app/services/core/appointments"
	"clinica-service/internal/app/services/core/doctors"
	"clinica-service/internal/app/services/core/healthplans"
	"clinica-service/internal/app/services/core/patients"
	"clinica-service/internal/app/services/core/reports"
	"clinica-service/internal/app/services/shared/formsessions"
	"clinica-service/internal/app/services/shared/notifications"
	"clinica-service/internal/app/services/shared/redis"
	sharedstorage "clinica-service/internal/app/services/shared/storage"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()
	requestLogger := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	redisClient := database.NewRedisClient(driverConfig)
	mongoDB := database.NewMongoDB(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		MongoDB:        mongoDB,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         zapLogger,
		RequestLogger:  requestLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}, location)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	zapLogger.Info("Waiting for pending requests to be processed before shutting down")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	zapLogger.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap, location *time.Location) {
	clinicBaseUrl := bootstrap.InternalConfig.Clinic.BaseUrl

	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	formSessionService := formsessions.NewFormSessionService(redisRepository, bootstrap.InternalConfig.App.FormSessionTTLInMinutes)
	notificationPublisher := notifications.NewNotificationPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig.App.NotificationQueue, bootstrap.Logger)
	storageService := sharedstorage.NewMinioStorageService(bootstrap.Minio, bootstrap.Logger)

	// Middlewares
	appMiddlewares := &middlewares.Middlewares{
		Log:            bootstrap.Logger,
		RequestLogger:  bootstrap.RequestLogger,
		InternalConfig: bootstrap.InternalConfig,
	}
	bootstrap.Router.Use(appMiddlewares.RequestIDMiddleware)
	bootstrap.Router.Use(appMiddlewares.Logging(bootstrap.Logger))
	bootstrap.Router.Use(appMiddlewares.AccessLog)

	// Backend clients
	patientRestClient := rest_patients.NewPatientRestClient(clinicBaseUrl, bootstrap.Logger)
	doctorRestClient := rest_doctors.NewDoctorRestClient(clinicBaseUrl, bootstrap.Logger)
	appointmentRestClient := rest_appointments.NewAppointmentRestClient(clinicBaseUrl, bootstrap.Logger)
	healthPlanRestClient := rest_healthplans.NewHealthPlanRestClient(clinicBaseUrl, bootstrap.Logger)
	reportRestClient := rest_reports.NewReportRestClient(clinicBaseUrl, bootstrap.InternalConfig.App.ReportRequestsPerSecond, bootstrap.Logger)

	// Patient
	patientUsecase := patients.NewPatientUsecase(patientRestClient)
	patientController := controllers.NewPatientController(bootstrap.Logger, patientUsecase)

	// Doctor
	doctorUsecase := doctors.NewDoctorUsecase(doctorRestClient)
	doctorController := controllers.NewDoctorController(bootstrap.Logger, doctorUsecase)

	// Health plan
	healthPlanUsecase := healthplans.NewHealthPlanUsecase(healthPlanRestClient)
	healthPlanController := controllers.NewHealthPlanController(bootstrap.Logger, healthPlanUsecase)

	// Appointment
	formUsecase := appointments.NewAppointmentFormUsecase(
		appointmentRestClient,
		patientRestClient,
		doctorRestClient,
		healthPlanRestClient,
		formSessionService,
		notificationPublisher,
		bootstrap.Logger,
		location,
	)
	listUsecase := appointments.NewAppointmentListUsecase(
		appointmentRestClient,
		patientRestClient,
		doctorRestClient,
		bootstrap.Logger,
		location,
	)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, formUsecase, listUsecase)

	// Report
	exportRecordRepository := reports.NewExportRecordMongoRepository(bootstrap.MongoDB)
	reportUsecase := reports.NewReportUsecase(
		reportRestClient,
		exportRecordRepository,
		storageService,
		bootstrap.InternalConfig.App.ReportExportBucket,
		bootstrap.Logger,
		location,
	)
	reportController := controllers.NewReportController(bootstrap.Logger, reportUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		appMiddlewares,
		patientController,
		doctorController,
		healthPlanController,
		appointmentController,
		reportController,
	)
}
