package models

import (
	"clinica-service/internal/pkg/constvars"
	"time"
)

// FormFields holds the editable state of an appointment form. DataHora is the
// local wall-clock representation (2006-01-02T15:04) in the service timezone;
// it converts back to the stored instant at minute precision on submit.
type FormFields struct {
	PacienteID *int64 `json:"paciente_id"`
	MedicoID   *int64 `json:"medico_id"`
	DataHora   string `json:"data_hora"`
	Descricao  string `json:"descricao"`
	Status     string `json:"status"`
}

// FormSession is the server-held counterpart of an open scheduling modal.
// It lives in Redis for the duration of the interaction and is removed on
// submit, dismissal, or TTL expiry.
type FormSession struct {
	ID            string     `json:"id"`
	Mode          string     `json:"mode"`
	AppointmentID *int64     `json:"agendamento_id,omitempty"`
	Fields        FormFields `json:"fields"`
	PlanLabel     string     `json:"plan_label,omitempty"`
	PlanName      string     `json:"plan_name,omitempty"`
	OpenedAt      time.Time  `json:"opened_at"`
}

func (s *FormSession) ReadOnly() bool {
	return s.Mode == constvars.FormModeView || s.Mode == constvars.FormModeDelete
}
