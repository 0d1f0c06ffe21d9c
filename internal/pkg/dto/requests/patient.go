package requests

type CreatePatient struct {
	Nome     string `json:"nome"`
	CPF      string `json:"cpf" validate:"required,cpf"`
	Telefone string `json:"telefone"`
}

type UpdatePatient struct {
	ID       int64  `json:"id"`
	Nome     string `json:"nome"`
	CPF      string `json:"cpf" validate:"required,cpf"`
	Telefone string `json:"telefone"`
}

// SetPatientPlan attaches a health plan to a patient, or detaches the
// current one when PlanoID is null.
type SetPatientPlan struct {
	PlanoID *int64 `json:"plano_id"`
}
