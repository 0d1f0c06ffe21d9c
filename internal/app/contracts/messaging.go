package contracts

import "context"

// AppointmentEvent is published on appointment lifecycle changes so
// downstream consumers (reminders, dashboards) can react.
type AppointmentEvent struct {
	Event         string `json:"event"`
	AppointmentID int64  `json:"agendamento_id"`
	PacienteID    int64  `json:"paciente_id,omitempty"`
	MedicoID      int64  `json:"medico_id,omitempty"`
	DataHora      string `json:"data_hora,omitempty"`
	Status        string `json:"status,omitempty"`
}

type NotificationPublisher interface {
	PublishAppointmentEvent(ctx context.Context, event *AppointmentEvent) error
}
