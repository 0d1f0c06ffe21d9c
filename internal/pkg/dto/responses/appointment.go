package responses

import "clinica-service/internal/app/models"

// Appointment is the list-view row: raw values plus display formatting the
// administrative screens render directly.
type Appointment struct {
	ID                int64  `json:"id"`
	PacienteID        int64  `json:"paciente_id"`
	PacienteNome      string `json:"paciente_nome"`
	MedicoID          int64  `json:"medico_id"`
	MedicoNome        string `json:"medico_nome"`
	DataHora          string `json:"data_hora"`
	DataHoraFormatada string `json:"data_hora_formatada"`
	Descricao         string `json:"descricao,omitempty"`
	Status            string `json:"status"`
	StatusLabel       string `json:"status_label"`
}

type AppointmentList struct {
	Agendamentos []Appointment `json:"agendamentos"`
	DataInicial  string        `json:"data_inicial,omitempty"`
	DataFinal    string        `json:"data_final,omitempty"`
}

// FormSession is the client view of an open scheduling form: current field
// state, reference lists for the selection inputs, and plan eligibility for
// the selected patient.
type FormSession struct {
	ID             string            `json:"id"`
	Mode           string            `json:"mode"`
	Fields         models.FormFields `json:"fields"`
	Pacientes      []models.Patient  `json:"pacientes"`
	Medicos        []models.Doctor   `json:"medicos"`
	PlanLabel      string            `json:"plan_label,omitempty"`
	PlanName       string            `json:"plan_name,omitempty"`
	SubmitDisabled bool              `json:"submit_disabled"`
}

type Eligibility struct {
	PlanLabel      string `json:"plan_label"`
	PlanName       string `json:"plan_name,omitempty"`
	SubmitDisabled bool   `json:"submit_disabled"`
}
