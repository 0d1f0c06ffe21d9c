package requests

// OpenForm opens a scheduling form session. AppointmentID is required for
// every mode except create.
type OpenForm struct {
	Mode          string `json:"mode" validate:"required,oneof=create view edit delete"`
	AppointmentID *int64 `json:"agendamento_id" validate:"required_unless=Mode create"`
}

type SelectPatient struct {
	PacienteID int64 `json:"paciente_id" validate:"required,gt=0"`
}

// SubmitForm carries the editable field values at submission time. The
// usecase validates them in fixed order; struct tags stay permissive on
// purpose so the fail-fast ordering owns the messages.
type SubmitForm struct {
	PacienteID *int64 `json:"paciente_id"`
	MedicoID   *int64 `json:"medico_id"`
	DataHora   string `json:"data_hora"`
	Descricao  string `json:"descricao"`
	Status     string `json:"status" validate:"omitempty,oneof=agendada confirmada realizada cancelada finalizada"`
}

// AppointmentFilter scopes a list refresh. Periodo shortcuts take precedence
// over explicit bounds.
type AppointmentFilter struct {
	Periodo     string `json:"periodo" validate:"omitempty,oneof=hoje semana mes ano"`
	DataInicial string `json:"data_inicial"`
	DataFinal   string `json:"data_final"`
}
