package patients

import (
	"clinica-service/internal/app/contracts"
	"clinica-service/internal/app/models"
	"clinica-service/internal/pkg/constvars"
	"clinica-service/internal/pkg/dto/requests"
	"clinica-service/internal/pkg/exceptions"
	"clinica-service/internal/pkg/utils"
	"context"
	"strings"
)

type patientUsecase struct {
	PatientRestClient contracts.PatientRestClient
}

func NewPatientUsecase(patientRestClient contracts.PatientRestClient) contracts.PatientUsecase {
	return &patientUsecase{
		PatientRestClient: patientRestClient,
	}
}

func (uc *patientUsecase) FindAll(ctx context.Context, includePlan bool) ([]models.Patient, error) {
	return uc.PatientRestClient.FindAll(ctx, includePlan)
}

func (uc *patientUsecase) FindByID(ctx context.Context, patientID int64) (*models.Patient, error) {
	return uc.PatientRestClient.FindByID(ctx, patientID)
}

func (uc *patientUsecase) Create(ctx context.Context, request *requests.CreatePatient) (*models.Patient, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	patient := &models.Patient{
		Nome:     normalizeName(request.Nome),
		CPF:      utils.StripNonDigits(request.CPF),
		Telefone: normalizePhone(request.Telefone),
	}
	return uc.PatientRestClient.Create(ctx, patient)
}

func (uc *patientUsecase) Update(ctx context.Context, request *requests.UpdatePatient) (*models.Patient, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	existing, err := uc.PatientRestClient.FindByID(ctx, request.ID)
	if err != nil {
		return nil, err
	}

	existing.Nome = normalizeName(request.Nome)
	existing.CPF = utils.StripNonDigits(request.CPF)
	existing.Telefone = normalizePhone(request.Telefone)
	return uc.PatientRestClient.Update(ctx, existing)
}

func (uc *patientUsecase) Delete(ctx context.Context, patientID int64) error {
	return uc.PatientRestClient.Delete(ctx, patientID)
}

// SetPlan attaches or detaches the patient's health plan. A null plan ID
// clears the association, which immediately affects scheduling eligibility.
func (uc *patientUsecase) SetPlan(ctx context.Context, patientID int64, request *requests.SetPatientPlan) (*models.Patient, error) {
	existing, err := uc.PatientRestClient.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	existing.PlanoID = request.PlanoID
	if request.PlanoID == nil {
		existing.PlanoSaude = nil
	}
	return uc.PatientRestClient.Update(ctx, existing)
}

func normalizeName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return constvars.PatientNameFallback
	}
	return trimmed
}

func normalizePhone(phone string) *string {
	trimmed := strings.TrimSpace(phone)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
