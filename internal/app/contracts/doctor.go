package contracts

import (
	"clinica-service/internal/app/models"
	"clinica-service/internal/pkg/dto/requests"
	"context"
)

type DoctorRestClient interface {
	FindAll(ctx context.Context) ([]models.Doctor, error)
	Create(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error)
	Update(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error)
	Delete(ctx context.Context, doctorID int64) error
}

type DoctorUsecase interface {
	FindAll(ctx context.Context) ([]models.Doctor, error)
	Create(ctx context.Context, request *requests.CreateDoctor) (*models.Doctor, error)
	Update(ctx context.Context, request *requests.UpdateDoctor) (*models.Doctor, error)
	Delete(ctx context.Context, doctorID int64) error
}
