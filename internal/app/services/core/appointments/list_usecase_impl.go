package appointments

import (
	"clinica-service/internal/app/contracts"
	"clinica-service/internal/app/models"
	"clinica-service/internal/pkg/constvars"
	"clinica-service/internal/pkg/dto/requests"
	"clinica-service/internal/pkg/dto/responses"
	"clinica-service/internal/pkg/exceptions"
	"clinica-service/internal/pkg/utils"
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

var statusLabels = map[string]string{
	constvars.AppointmentStatusScheduled: "Agendada",
	constvars.AppointmentStatusConfirmed: "Confirmada",
	constvars.AppointmentStatusCompleted: "Realizada",
	constvars.AppointmentStatusCancelled: "Cancelada",
	constvars.AppointmentStatusFinished:  "Finalizada",
}

type appointmentListUsecase struct {
	AppointmentRestClient contracts.AppointmentRestClient
	PatientRestClient     contracts.PatientRestClient
	DoctorRestClient      contracts.DoctorRestClient
	Log                   *zap.Logger
	Location              *time.Location
	now                   func() time.Time

	// fetchToken orders concurrent refreshes: only the newest fetch may
	// replace the cached list, stale responses are discarded.
	fetchToken uint64
	mu         sync.Mutex
	lastList   *responses.AppointmentList
}

func NewAppointmentListUsecase(
	appointmentRestClient contracts.AppointmentRestClient,
	patientRestClient contracts.PatientRestClient,
	doctorRestClient contracts.DoctorRestClient,
	logger *zap.Logger,
	location *time.Location,
) contracts.AppointmentListUsecase {
	return &appointmentListUsecase{
		AppointmentRestClient: appointmentRestClient,
		PatientRestClient:     patientRestClient,
		DoctorRestClient:      doctorRestClient,
		Log:                   logger,
		Location:              location,
		now:                   time.Now,
	}
}

func (uc *appointmentListUsecase) Refresh(ctx context.Context, filter *requests.AppointmentFilter) (*responses.AppointmentList, error) {
	if err := utils.ValidateStruct(filter); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	startDate, endDate := uc.resolveRange(filter)
	token := atomic.AddUint64(&uc.fetchToken, 1)

	uc.Log.Info("appointmentListUsecase.Refresh started",
		zap.Uint64(constvars.LoggingFetchTokenKey, token),
		zap.String(constvars.LoggingFilterStartKey, startDate),
		zap.String(constvars.LoggingFilterEndKey, endDate),
	)

	var (
		wg              sync.WaitGroup
		appointments    []models.Appointment
		patients        []models.Patient
		doctors         []models.Doctor
		appointmentsErr error
		patientsErr     error
		doctorsErr      error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		appointments, appointmentsErr = uc.AppointmentRestClient.FindAll(ctx, startDate, endDate)
	}()
	go func() {
		defer wg.Done()
		patients, patientsErr = uc.PatientRestClient.FindAll(ctx, false)
	}()
	go func() {
		defer wg.Done()
		doctors, doctorsErr = uc.DoctorRestClient.FindAll(ctx)
	}()
	wg.Wait()

	if appointmentsErr != nil {
		return nil, appointmentsErr
	}
	if patientsErr != nil {
		return nil, patientsErr
	}
	if doctorsErr != nil {
		return nil, doctorsErr
	}

	list := uc.buildList(appointments, patients, doctors, startDate, endDate)

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if token != atomic.LoadUint64(&uc.fetchToken) {
		uc.Log.Info("appointmentListUsecase.Refresh discarded stale response",
			zap.Uint64(constvars.LoggingFetchTokenKey, token),
		)
		if uc.lastList != nil {
			return uc.lastList, nil
		}
		return list, nil
	}
	uc.lastList = list
	return list, nil
}

func (uc *appointmentListUsecase) ClearFilters(ctx context.Context) (*responses.AppointmentList, error) {
	return uc.Refresh(ctx, &requests.AppointmentFilter{})
}

// resolveRange turns a periodo shortcut into explicit bounds. Explicit
// bounds only take effect when both are present; a half-filled range is
// treated as no range at all.
func (uc *appointmentListUsecase) resolveRange(filter *requests.AppointmentFilter) (string, string) {
	today := uc.now().In(uc.Location)

	switch filter.Periodo {
	case constvars.FilterPeriodToday:
		return formatRangeDate(today), formatRangeDate(today)
	case constvars.FilterPeriodWeek:
		start := utils.StartOfWeek(today)
		return formatRangeDate(start), formatRangeDate(utils.AddDays(start, 6))
	case constvars.FilterPeriodMonth:
		return formatRangeDate(utils.StartOfMonth(today)), formatRangeDate(utils.EndOfMonth(today))
	case constvars.FilterPeriodYear:
		return formatRangeDate(utils.StartOfYear(today)), formatRangeDate(utils.EndOfYear(today))
	}

	if filter.DataInicial != "" && filter.DataFinal != "" {
		return filter.DataInicial, filter.DataFinal
	}
	return "", ""
}

func (uc *appointmentListUsecase) buildList(
	appointments []models.Appointment,
	patients []models.Patient,
	doctors []models.Doctor,
	startDate, endDate string,
) *responses.AppointmentList {
	patientNames := make(map[int64]string, len(patients))
	for _, patient := range patients {
		patientNames[patient.ID] = patient.Nome
	}
	doctorNames := make(map[int64]string, len(doctors))
	for _, doctor := range doctors {
		doctorNames[doctor.ID] = doctor.Nome
	}

	rows := make([]responses.Appointment, len(appointments))
	for i, appointment := range appointments {
		local := appointment.DataHora.In(uc.Location)

		row := responses.Appointment{
			ID:                appointment.ID,
			PacienteID:        appointment.PacienteID,
			PacienteNome:      patientNames[appointment.PacienteID],
			MedicoID:          appointment.MedicoID,
			MedicoNome:        doctorNames[appointment.MedicoID],
			DataHora:          local.Format(constvars.FormDateTimeLayout),
			DataHoraFormatada: local.Format(constvars.DisplayDateTimeLayout),
			Status:            appointment.Status,
			StatusLabel:       statusLabel(appointment.Status),
		}
		// Embedded references win over list lookups when present.
		if appointment.Paciente != nil {
			row.PacienteNome = appointment.Paciente.Nome
		}
		if appointment.Medico != nil {
			row.MedicoNome = appointment.Medico.Nome
		}
		if appointment.Descricao != nil {
			row.Descricao = *appointment.Descricao
		}
		rows[i] = row
	}

	return &responses.AppointmentList{
		Agendamentos: rows,
		DataInicial:  startDate,
		DataFinal:    endDate,
	}
}

// statusLabel renders known statuses with their display capitalization and
// passes unknown values through untouched.
func statusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}

func formatRangeDate(date time.Time) string {
	return date.Format(time.DateOnly)
}
