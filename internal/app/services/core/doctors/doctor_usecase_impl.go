package doctors

import (
	"clinica-service/internal/app/contracts"
	"clinica-service/internal/app/models"
	"clinica-service/internal/pkg/dto/requests"
	"clinica-service/internal/pkg/exceptions"
	"clinica-service/internal/pkg/utils"
	"context"
	"strings"
)

type doctorUsecase struct {
	DoctorRestClient contracts.DoctorRestClient
}

func NewDoctorUsecase(doctorRestClient contracts.DoctorRestClient) contracts.DoctorUsecase {
	return &doctorUsecase{
		DoctorRestClient: doctorRestClient,
	}
}

func (uc *doctorUsecase) FindAll(ctx context.Context) ([]models.Doctor, error) {
	return uc.DoctorRestClient.FindAll(ctx)
}

func (uc *doctorUsecase) Create(ctx context.Context, request *requests.CreateDoctor) (*models.Doctor, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	doctor := &models.Doctor{
		Nome:     strings.TrimSpace(request.Nome),
		CRM:      strings.TrimSpace(request.CRM),
		Telefone: normalizePhone(request.Telefone),
	}
	return uc.DoctorRestClient.Create(ctx, doctor)
}

func (uc *doctorUsecase) Update(ctx context.Context, request *requests.UpdateDoctor) (*models.Doctor, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	doctor := &models.Doctor{
		ID:       request.ID,
		Nome:     strings.TrimSpace(request.Nome),
		CRM:      strings.TrimSpace(request.CRM),
		Telefone: normalizePhone(request.Telefone),
	}
	return uc.DoctorRestClient.Update(ctx, doctor)
}

func (uc *doctorUsecase) Delete(ctx context.Context, doctorID int64) error {
	return uc.DoctorRestClient.Delete(ctx, doctorID)
}

func normalizePhone(phone string) *string {
	trimmed := strings.TrimSpace(phone)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
