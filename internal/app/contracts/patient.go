package contracts

import (
	"clinica-service/internal/app/models"
	"clinica-service/internal/pkg/dto/requests"
	"context"
)

type PatientRestClient interface {
	FindAll(ctx context.Context, includePlan bool) ([]models.Patient, error)
	FindByID(ctx context.Context, patientID int64) (*models.Patient, error)
	Create(ctx context.Context, patient *models.Patient) (*models.Patient, error)
	Update(ctx context.Context, patient *models.Patient) (*models.Patient, error)
	Delete(ctx context.Context, patientID int64) error
}

type PatientUsecase interface {
	FindAll(ctx context.Context, includePlan bool) ([]models.Patient, error)
	FindByID(ctx context.Context, patientID int64) (*models.Patient, error)
	Create(ctx context.Context, request *requests.CreatePatient) (*models.Patient, error)
	Update(ctx context.Context, request *requests.UpdatePatient) (*models.Patient, error)
	Delete(ctx context.Context, patientID int64) error
	SetPlan(ctx context.Context, patientID int64, request *requests.SetPatientPlan) (*models.Patient, error)
}
