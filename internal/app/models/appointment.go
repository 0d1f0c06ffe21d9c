package models

import "time"

// Appointment mirrors the backend's consulta resource. DataHora is an
// absolute instant; list endpoints may embed the referenced patient and
// doctor for display.
type Appointment struct {
	ID         int64     `json:"id"`
	PacienteID int64     `json:"paciente_id"`
	MedicoID   int64     `json:"medico_id"`
	DataHora   time.Time `json:"data_hora"`
	Descricao  *string   `json:"descricao"`
	Status     string    `json:"status"`
	Paciente   *Patient  `json:"Paciente,omitempty"`
	Medico     *Doctor   `json:"Medico,omitempty"`
}
