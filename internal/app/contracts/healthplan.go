package contracts

import (
	"clinica-service/internal/app/models"
	"clinica-service/internal/pkg/dto/requests"
	"context"
)

type HealthPlanRestClient interface {
	FindByID(ctx context.Context, planID int64) (*models.HealthPlan, error)
	Create(ctx context.Context, plan *models.HealthPlan) (*models.HealthPlan, error)
	Update(ctx context.Context, plan *models.HealthPlan) (*models.HealthPlan, error)
}

type HealthPlanUsecase interface {
	FindByID(ctx context.Context, planID int64) (*models.HealthPlan, error)
	Create(ctx context.Context, request *requests.CreateHealthPlan) (*models.HealthPlan, error)
	Update(ctx context.Context, request *requests.UpdateHealthPlan) (*models.HealthPlan, error)
}
