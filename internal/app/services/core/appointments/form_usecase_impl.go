package appointments

import (
	"clinica-service/internal/app/contracts"
	"clinica-service/internal/app/models"
	"clinica-service/internal/app/services/core/eligibility"
	"clinica-service/internal/pkg/constvars"
	"clinica-service/internal/pkg/dto/requests"
	"clinica-service/internal/pkg/dto/responses"
	"clinica-service/internal/pkg/exceptions"
	"clinica-service/internal/pkg/utils"
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	eventAppointmentCreated = "agendamento_criado"
	eventAppointmentUpdated = "agendamento_atualizado"
	eventAppointmentDeleted = "agendamento_excluido"
)

type appointmentFormUsecase struct {
	AppointmentRestClient contracts.AppointmentRestClient
	PatientRestClient     contracts.PatientRestClient
	DoctorRestClient      contracts.DoctorRestClient
	HealthPlanRestClient  contracts.HealthPlanRestClient
	FormSessionService    contracts.FormSessionService
	NotificationPublisher contracts.NotificationPublisher
	Log                   *zap.Logger
	Location              *time.Location
	now                   func() time.Time
}

func NewAppointmentFormUsecase(
	appointmentRestClient contracts.AppointmentRestClient,
	patientRestClient contracts.PatientRestClient,
	doctorRestClient contracts.DoctorRestClient,
	healthPlanRestClient contracts.HealthPlanRestClient,
	formSessionService contracts.FormSessionService,
	notificationPublisher contracts.NotificationPublisher,
	logger *zap.Logger,
	location *time.Location,
) contracts.AppointmentFormUsecase {
	return &appointmentFormUsecase{
		AppointmentRestClient: appointmentRestClient,
		PatientRestClient:     patientRestClient,
		DoctorRestClient:      doctorRestClient,
		HealthPlanRestClient:  healthPlanRestClient,
		FormSessionService:    formSessionService,
		NotificationPublisher: notificationPublisher,
		Log:                   logger,
		Location:              location,
		now:                   time.Now,
	}
}

// Open starts a form session. Create mode opens blank; every other mode
// prefills the fields from the referenced appointment, converting the stored
// instant to the service timezone at minute precision.
func (uc *appointmentFormUsecase) Open(ctx context.Context, request *requests.OpenForm) (*responses.FormSession, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	session := &models.FormSession{
		ID:       utils.GenerateFormSessionID(),
		Mode:     request.Mode,
		OpenedAt: uc.now(),
	}

	if request.Mode != constvars.FormModeCreate {
		appointment, err := uc.AppointmentRestClient.FindByID(ctx, *request.AppointmentID)
		if err != nil {
			return nil, err
		}
		session.AppointmentID = &appointment.ID
		session.Fields = models.FormFields{
			PacienteID: &appointment.PacienteID,
			MedicoID:   &appointment.MedicoID,
			DataHora:   appointment.DataHora.In(uc.Location).Format(constvars.FormDateTimeLayout),
			Status:     appointment.Status,
		}
		if appointment.Descricao != nil {
			session.Fields.Descricao = *appointment.Descricao
		}

		result, err := uc.classifyPatientPlan(ctx, appointment.PacienteID)
		if err != nil {
			return nil, err
		}
		session.PlanLabel = result.Label
		session.PlanName = result.PlanName
	}

	if err := uc.FormSessionService.Save(ctx, session); err != nil {
		return nil, err
	}

	uc.Log.Info("appointmentFormUsecase.Open succeeded",
		zap.String(constvars.LoggingFormSessionIDKey, session.ID),
		zap.String(constvars.LoggingFormModeKey, session.Mode),
	)
	return uc.buildSessionResponse(ctx, session)
}

func (uc *appointmentFormUsecase) Get(ctx context.Context, sessionID string) (*responses.FormSession, error) {
	session, err := uc.FormSessionService.Find(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return uc.buildSessionResponse(ctx, session)
}

// SelectPatient re-evaluates plan eligibility whenever the form's patient
// selection changes, so the notice under the selector is always current.
func (uc *appointmentFormUsecase) SelectPatient(ctx context.Context, sessionID string, request *requests.SelectPatient) (*responses.Eligibility, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	session, err := uc.FormSessionService.Find(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.ReadOnly() {
		return nil, exceptions.ErrFormSessionReadOnly()
	}

	result, err := uc.classifyPatientPlan(ctx, request.PacienteID)
	if err != nil {
		return nil, err
	}

	session.Fields.PacienteID = &request.PacienteID
	session.PlanLabel = result.Label
	session.PlanName = result.PlanName
	if err := uc.FormSessionService.Save(ctx, session); err != nil {
		return nil, err
	}

	return &responses.Eligibility{
		PlanLabel:      result.Label,
		PlanName:       result.PlanName,
		SubmitDisabled: !result.Eligible,
	}, nil
}

// Submit finalizes the session. Delete mode removes the appointment without
// touching the field values; create and edit validate the fields in fixed
// order, re-check plan eligibility, and save through the backend. The
// session is removed only after the backend accepts the operation.
func (uc *appointmentFormUsecase) Submit(ctx context.Context, sessionID string, request *requests.SubmitForm) error {
	session, err := uc.FormSessionService.Find(ctx, sessionID)
	if err != nil {
		return err
	}

	switch session.Mode {
	case constvars.FormModeDelete:
		return uc.submitDelete(ctx, session)
	case constvars.FormModeView:
		return exceptions.ErrFormSessionReadOnly()
	}

	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}

	fields := models.FormFields{
		PacienteID: request.PacienteID,
		MedicoID:   request.MedicoID,
		DataHora:   request.DataHora,
		Descricao:  request.Descricao,
		Status:     request.Status,
	}
	// Edit never changes who the appointment is for or with; those fields
	// stay locked to the values the session opened with.
	if session.Mode == constvars.FormModeEdit {
		fields.PacienteID = session.Fields.PacienteID
		fields.MedicoID = session.Fields.MedicoID
	}

	if fields.PacienteID == nil {
		return exceptions.ErrFormPatientNotSelected()
	}
	if fields.MedicoID == nil {
		return exceptions.ErrFormDoctorNotSelected()
	}
	if strings.TrimSpace(fields.DataHora) == "" {
		return exceptions.ErrFormDateTimeNotSelected()
	}

	result, err := uc.classifyPatientPlan(ctx, *fields.PacienteID)
	if err != nil {
		return err
	}
	if !result.Eligible {
		if result.Label == constvars.PlanLabelNone {
			return exceptions.ErrPatientHasNoPlan()
		}
		return exceptions.ErrHealthPlanExpired()
	}

	dataHora, err := time.ParseInLocation(constvars.FormDateTimeLayout, fields.DataHora, uc.Location)
	if err != nil {
		return exceptions.ErrCannotParseDate(err)
	}

	appointment := &models.Appointment{
		PacienteID: *fields.PacienteID,
		MedicoID:   *fields.MedicoID,
		DataHora:   dataHora.UTC(),
		Descricao:  normalizeDescription(fields.Descricao),
		Status:     fields.Status,
	}
	if appointment.Status == "" {
		appointment.Status = constvars.AppointmentStatusScheduled
	}

	var saved *models.Appointment
	eventName := eventAppointmentCreated
	if session.Mode == constvars.FormModeEdit {
		appointment.ID = *session.AppointmentID
		saved, err = uc.AppointmentRestClient.Update(ctx, appointment)
		eventName = eventAppointmentUpdated
	} else {
		saved, err = uc.AppointmentRestClient.Create(ctx, appointment)
	}
	if err != nil {
		return err
	}

	uc.publishEvent(ctx, eventName, saved)
	return uc.FormSessionService.Delete(ctx, session.ID)
}

// Dismiss closes the form without saving. Closing an already-gone session
// is not an error; the modal may be dismissed after its TTL expired.
func (uc *appointmentFormUsecase) Dismiss(ctx context.Context, sessionID string) error {
	return uc.FormSessionService.Delete(ctx, sessionID)
}

func (uc *appointmentFormUsecase) submitDelete(ctx context.Context, session *models.FormSession) error {
	if err := uc.AppointmentRestClient.Delete(ctx, *session.AppointmentID); err != nil {
		return err
	}

	event := &models.Appointment{ID: *session.AppointmentID}
	if session.Fields.PacienteID != nil {
		event.PacienteID = *session.Fields.PacienteID
	}
	if session.Fields.MedicoID != nil {
		event.MedicoID = *session.Fields.MedicoID
	}
	uc.publishEvent(ctx, eventAppointmentDeleted, event)

	return uc.FormSessionService.Delete(ctx, session.ID)
}

// classifyPatientPlan loads the patient and, when the plan association is an
// ID without the embedded resource, resolves it before evaluating coverage.
func (uc *appointmentFormUsecase) classifyPatientPlan(ctx context.Context, patientID int64) (eligibility.Result, error) {
	patient, err := uc.PatientRestClient.FindByID(ctx, patientID)
	if err != nil {
		return eligibility.Result{}, err
	}

	if patient.PlanoSaude == nil && patient.PlanoID != nil {
		plan, err := uc.HealthPlanRestClient.FindByID(ctx, *patient.PlanoID)
		if err != nil {
			return eligibility.Result{}, err
		}
		patient.PlanoSaude = plan
	}

	return eligibility.Evaluate(patient, uc.now(), uc.Location), nil
}

// buildSessionResponse assembles the client view: session state plus the
// reference lists the selection inputs render. Both lists load concurrently.
func (uc *appointmentFormUsecase) buildSessionResponse(ctx context.Context, session *models.FormSession) (*responses.FormSession, error) {
	var (
		wg          sync.WaitGroup
		patients    []models.Patient
		doctors     []models.Doctor
		patientsErr error
		doctorsErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		patients, patientsErr = uc.PatientRestClient.FindAll(ctx, true)
	}()
	go func() {
		defer wg.Done()
		doctors, doctorsErr = uc.DoctorRestClient.FindAll(ctx)
	}()
	wg.Wait()

	if patientsErr != nil {
		return nil, patientsErr
	}
	if doctorsErr != nil {
		return nil, doctorsErr
	}

	submitDisabled := false
	if !session.ReadOnly() && session.Fields.PacienteID != nil {
		submitDisabled = session.PlanLabel != constvars.PlanLabelActive
	}

	return &responses.FormSession{
		ID:             session.ID,
		Mode:           session.Mode,
		Fields:         session.Fields,
		Pacientes:      patients,
		Medicos:        doctors,
		PlanLabel:      session.PlanLabel,
		PlanName:       session.PlanName,
		SubmitDisabled: submitDisabled,
	}, nil
}

// publishEvent is best-effort: a broker outage must not fail the save that
// already happened on the backend.
func (uc *appointmentFormUsecase) publishEvent(ctx context.Context, eventName string, appointment *models.Appointment) {
	event := &contracts.AppointmentEvent{
		Event:         eventName,
		AppointmentID: appointment.ID,
		PacienteID:    appointment.PacienteID,
		MedicoID:      appointment.MedicoID,
		Status:        appointment.Status,
	}
	if !appointment.DataHora.IsZero() {
		event.DataHora = appointment.DataHora.UTC().Format(time.RFC3339)
	}

	if err := uc.NotificationPublisher.PublishAppointmentEvent(ctx, event); err != nil {
		uc.Log.Warn("appointmentFormUsecase failed to publish event",
			zap.String("event", eventName),
			zap.Int64(constvars.LoggingAppointmentIDKey, appointment.ID),
			zap.Error(err),
		)
	}
}

func normalizeDescription(description string) *string {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
