package healthplans

import (
	"clinica-service/internal/app/contracts"
	"clinica-service/internal/app/models"
	"clinica-service/internal/pkg/dto/requests"
	"clinica-service/internal/pkg/exceptions"
	"clinica-service/internal/pkg/utils"
	"context"
	"strings"
	"time"
)

type healthPlanUsecase struct {
	HealthPlanRestClient contracts.HealthPlanRestClient
}

func NewHealthPlanUsecase(healthPlanRestClient contracts.HealthPlanRestClient) contracts.HealthPlanUsecase {
	return &healthPlanUsecase{
		HealthPlanRestClient: healthPlanRestClient,
	}
}

func (uc *healthPlanUsecase) FindByID(ctx context.Context, planID int64) (*models.HealthPlan, error) {
	return uc.HealthPlanRestClient.FindByID(ctx, planID)
}

func (uc *healthPlanUsecase) Create(ctx context.Context, request *requests.CreateHealthPlan) (*models.HealthPlan, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if _, err := time.Parse(time.DateOnly, request.Validade); err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	plan := &models.HealthPlan{
		Nome:      strings.TrimSpace(request.Nome),
		Operadora: strings.TrimSpace(request.Operadora),
		Validade:  request.Validade,
		Status:    request.Status,
	}
	return uc.HealthPlanRestClient.Create(ctx, plan)
}

func (uc *healthPlanUsecase) Update(ctx context.Context, request *requests.UpdateHealthPlan) (*models.HealthPlan, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if _, err := time.Parse(time.DateOnly, request.Validade); err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	plan := &models.HealthPlan{
		ID:        request.ID,
		Nome:      strings.TrimSpace(request.Nome),
		Operadora: strings.TrimSpace(request.Operadora),
		Validade:  request.Validade,
		Status:    request.Status,
	}
	return uc.HealthPlanRestClient.Update(ctx, plan)
}
