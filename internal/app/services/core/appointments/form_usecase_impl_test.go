package appointments

import (
	"clinica-service/internal/app/contracts"
	"clinica-service/internal/app/models"
	"clinica-service/internal/pkg/constvars"
	"clinica-service/internal/pkg/dto/requests"
	"clinica-service/internal/pkg/exceptions"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

var testLocation = time.FixedZone("-03", -3*60*60)

type stubAppointmentClient struct {
	appointments map[int64]*models.Appointment
	created      *models.Appointment
	updated      *models.Appointment
	deletedID    int64
}

func (s *stubAppointmentClient) FindAll(ctx context.Context, startDate, endDate string) ([]models.Appointment, error) {
	return nil, nil
}

func (s *stubAppointmentClient) FindByID(ctx context.Context, appointmentID int64) (*models.Appointment, error) {
	appointment, ok := s.appointments[appointmentID]
	if !ok {
		return nil, errors.New("not found")
	}
	return appointment, nil
}

func (s *stubAppointmentClient) Create(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	s.created = appointment
	saved := *appointment
	saved.ID = 101
	return &saved, nil
}

func (s *stubAppointmentClient) Update(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	s.updated = appointment
	return appointment, nil
}

func (s *stubAppointmentClient) Delete(ctx context.Context, appointmentID int64) error {
	s.deletedID = appointmentID
	return nil
}

type stubPatientClient struct {
	patients map[int64]*models.Patient
}

func (s *stubPatientClient) FindAll(ctx context.Context, includePlan bool) ([]models.Patient, error) {
	all := make([]models.Patient, 0, len(s.patients))
	for _, patient := range s.patients {
		all = append(all, *patient)
	}
	return all, nil
}

func (s *stubPatientClient) FindByID(ctx context.Context, patientID int64) (*models.Patient, error) {
	patient, ok := s.patients[patientID]
	if !ok {
		return nil, errors.New("not found")
	}
	copied := *patient
	return &copied, nil
}

func (s *stubPatientClient) Create(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	return patient, nil
}

func (s *stubPatientClient) Update(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	return patient, nil
}

func (s *stubPatientClient) Delete(ctx context.Context, patientID int64) error {
	return nil
}

type stubDoctorClient struct {
	doctors []models.Doctor
}

func (s *stubDoctorClient) FindAll(ctx context.Context) ([]models.Doctor, error) {
	return s.doctors, nil
}

func (s *stubDoctorClient) Create(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error) {
	return doctor, nil
}

func (s *stubDoctorClient) Update(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error) {
	return doctor, nil
}

func (s *stubDoctorClient) Delete(ctx context.Context, doctorID int64) error {
	return nil
}

type stubHealthPlanClient struct {
	plans map[int64]*models.HealthPlan
}

func (s *stubHealthPlanClient) FindByID(ctx context.Context, planID int64) (*models.HealthPlan, error) {
	plan, ok := s.plans[planID]
	if !ok {
		return nil, errors.New("not found")
	}
	return plan, nil
}

func (s *stubHealthPlanClient) Create(ctx context.Context, plan *models.HealthPlan) (*models.HealthPlan, error) {
	return plan, nil
}

func (s *stubHealthPlanClient) Update(ctx context.Context, plan *models.HealthPlan) (*models.HealthPlan, error) {
	return plan, nil
}

type fakeSessionService struct {
	sessions map[string]*models.FormSession
}

func newFakeSessionService() *fakeSessionService {
	return &fakeSessionService{sessions: make(map[string]*models.FormSession)}
}

func (f *fakeSessionService) Save(ctx context.Context, session *models.FormSession) error {
	copied := *session
	f.sessions[session.ID] = &copied
	return nil
}

func (f *fakeSessionService) Find(ctx context.Context, sessionID string) (*models.FormSession, error) {
	session, ok := f.sessions[sessionID]
	if !ok {
		return nil, exceptions.ErrFormSessionNotFound(nil)
	}
	copied := *session
	return &copied, nil
}

func (f *fakeSessionService) Delete(ctx context.Context, sessionID string) error {
	delete(f.sessions, sessionID)
	return nil
}

type stubPublisher struct {
	events []*contracts.AppointmentEvent
}

func (s *stubPublisher) PublishAppointmentEvent(ctx context.Context, event *contracts.AppointmentEvent) error {
	s.events = append(s.events, event)
	return nil
}

type formFixture struct {
	usecase      *appointmentFormUsecase
	appointments *stubAppointmentClient
	sessions     *fakeSessionService
	publisher    *stubPublisher
}

func newFormFixture() *formFixture {
	phone := "11 99999-0000"
	appointments := &stubAppointmentClient{appointments: make(map[int64]*models.Appointment)}
	patients := &stubPatientClient{patients: map[int64]*models.Patient{
		1: {ID: 1, Nome: "Ana", CPF: "12345678901", Telefone: &phone, PlanoSaude: &models.HealthPlan{
			ID: 7, Nome: "Plano Ouro", Validade: "2030-01-01",
		}},
		2: {ID: 2, Nome: "Bruno", CPF: "10987654321"},
		3: {ID: 3, Nome: "Carla", CPF: "11122233344", PlanoSaude: &models.HealthPlan{
			ID: 8, Nome: "Plano Bronze", Validade: "2020-01-01",
		}},
	}}
	doctors := &stubDoctorClient{doctors: []models.Doctor{{ID: 10, Nome: "Dr. House", CRM: "CRM-1234"}}}
	plans := &stubHealthPlanClient{plans: map[int64]*models.HealthPlan{}}
	sessions := newFakeSessionService()
	publisher := &stubPublisher{}

	usecase := &appointmentFormUsecase{
		AppointmentRestClient: appointments,
		PatientRestClient:     patients,
		DoctorRestClient:      doctors,
		HealthPlanRestClient:  plans,
		FormSessionService:    sessions,
		NotificationPublisher: publisher,
		Log:                   zap.NewNop(),
		Location:              testLocation,
		now:                   func() time.Time { return time.Date(2024, 6, 15, 10, 0, 0, 0, testLocation) },
	}
	return &formFixture{
		usecase:      usecase,
		appointments: appointments,
		sessions:     sessions,
		publisher:    publisher,
	}
}

func (f *formFixture) openSession(t *testing.T, mode string, appointmentID *int64) string {
	t.Helper()
	session, err := f.usecase.Open(context.Background(), &requests.OpenForm{Mode: mode, AppointmentID: appointmentID})
	assert.NoError(t, err)
	return session.ID
}

func clientMessage(t *testing.T, err error) string {
	t.Helper()
	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	return customErr.ClientMessage
}

func int64Ptr(v int64) *int64 {
	return &v
}

func TestAppointmentFormUsecase_Submit_Validation(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing patient is reported first even when everything is missing", func(t *testing.T) {
		fixture := newFormFixture()
		sessionID := fixture.openSession(t, constvars.FormModeCreate, nil)

		err := fixture.usecase.Submit(ctx, sessionID, &requests.SubmitForm{})

		assert.Equal(t, constvars.ErrClientSelectPatient, clientMessage(t, err))
		assert.Nil(t, fixture.appointments.created)
	})

	t.Run("Missing doctor is reported after patient is set", func(t *testing.T) {
		fixture := newFormFixture()
		sessionID := fixture.openSession(t, constvars.FormModeCreate, nil)

		err := fixture.usecase.Submit(ctx, sessionID, &requests.SubmitForm{PacienteID: int64Ptr(1)})

		assert.Equal(t, constvars.ErrClientSelectDoctor, clientMessage(t, err))
	})

	t.Run("Missing datetime is reported after patient and doctor are set", func(t *testing.T) {
		fixture := newFormFixture()
		sessionID := fixture.openSession(t, constvars.FormModeCreate, nil)

		err := fixture.usecase.Submit(ctx, sessionID, &requests.SubmitForm{
			PacienteID: int64Ptr(1),
			MedicoID:   int64Ptr(10),
			DataHora:   "   ",
		})

		assert.Equal(t, constvars.ErrClientSelectDateTime, clientMessage(t, err))
	})

	t.Run("Patient without plan cannot be scheduled", func(t *testing.T) {
		fixture := newFormFixture()
		sessionID := fixture.openSession(t, constvars.FormModeCreate, nil)

		err := fixture.usecase.Submit(ctx, sessionID, &requests.SubmitForm{
			PacienteID: int64Ptr(2),
			MedicoID:   int64Ptr(10),
			DataHora:   "2024-06-20T14:30",
		})

		assert.Equal(t, constvars.ErrClientPatientHasNoPlan, clientMessage(t, err))
		assert.Nil(t, fixture.appointments.created)
	})

	t.Run("Patient with expired plan cannot be scheduled", func(t *testing.T) {
		fixture := newFormFixture()
		sessionID := fixture.openSession(t, constvars.FormModeCreate, nil)

		err := fixture.usecase.Submit(ctx, sessionID, &requests.SubmitForm{
			PacienteID: int64Ptr(3),
			MedicoID:   int64Ptr(10),
			DataHora:   "2024-06-20T14:30",
		})

		assert.Equal(t, constvars.ErrClientPlanExpired, clientMessage(t, err))
		assert.Nil(t, fixture.appointments.created)
	})
}

func TestAppointmentFormUsecase_Submit_Create(t *testing.T) {
	ctx := context.Background()
	fixture := newFormFixture()
	sessionID := fixture.openSession(t, constvars.FormModeCreate, nil)

	err := fixture.usecase.Submit(ctx, sessionID, &requests.SubmitForm{
		PacienteID: int64Ptr(1),
		MedicoID:   int64Ptr(10),
		DataHora:   "2024-06-20T14:30",
		Descricao:  "  Retorno  ",
	})

	assert.NoError(t, err)
	created := fixture.appointments.created
	assert.NotNil(t, created)
	assert.Equal(t, int64(1), created.PacienteID)
	assert.Equal(t, int64(10), created.MedicoID)
	assert.Equal(t, constvars.AppointmentStatusScheduled, created.Status)

	// 14:30 at UTC-3 is 17:30 UTC.
	assert.Equal(t, time.Date(2024, 6, 20, 17, 30, 0, 0, time.UTC), created.DataHora)
	assert.NotNil(t, created.Descricao)
	assert.Equal(t, "Retorno", *created.Descricao)

	_, err = fixture.sessions.Find(ctx, sessionID)
	assert.Error(t, err, "session should be gone after a successful submit")

	assert.Len(t, fixture.publisher.events, 1)
	assert.Equal(t, eventAppointmentCreated, fixture.publisher.events[0].Event)
}

func TestAppointmentFormUsecase_Submit_EditLocksReferences(t *testing.T) {
	ctx := context.Background()
	fixture := newFormFixture()
	description := "Consulta inicial"
	fixture.appointments.appointments[55] = &models.Appointment{
		ID:         55,
		PacienteID: 1,
		MedicoID:   10,
		DataHora:   time.Date(2024, 6, 18, 13, 0, 0, 0, time.UTC),
		Descricao:  &description,
		Status:     constvars.AppointmentStatusScheduled,
	}
	sessionID := fixture.openSession(t, constvars.FormModeEdit, int64Ptr(55))

	err := fixture.usecase.Submit(ctx, sessionID, &requests.SubmitForm{
		PacienteID: int64Ptr(3),
		MedicoID:   int64Ptr(99),
		DataHora:   "2024-06-21T09:00",
		Status:     constvars.AppointmentStatusConfirmed,
	})

	assert.NoError(t, err)
	updated := fixture.appointments.updated
	assert.NotNil(t, updated)
	assert.Equal(t, int64(55), updated.ID)
	assert.Equal(t, int64(1), updated.PacienteID, "edit must keep the original patient")
	assert.Equal(t, int64(10), updated.MedicoID, "edit must keep the original doctor")
	assert.Equal(t, constvars.AppointmentStatusConfirmed, updated.Status)
}

func TestAppointmentFormUsecase_Submit_DeleteMode(t *testing.T) {
	ctx := context.Background()
	fixture := newFormFixture()
	fixture.appointments.appointments[55] = &models.Appointment{
		ID:         55,
		PacienteID: 1,
		MedicoID:   10,
		DataHora:   time.Date(2024, 6, 18, 13, 0, 0, 0, time.UTC),
		Status:     constvars.AppointmentStatusScheduled,
	}
	sessionID := fixture.openSession(t, constvars.FormModeDelete, int64Ptr(55))

	err := fixture.usecase.Submit(ctx, sessionID, &requests.SubmitForm{})

	assert.NoError(t, err)
	assert.Equal(t, int64(55), fixture.appointments.deletedID)
	assert.Nil(t, fixture.appointments.created)

	_, err = fixture.sessions.Find(ctx, sessionID)
	assert.Error(t, err)

	assert.Len(t, fixture.publisher.events, 1)
	assert.Equal(t, eventAppointmentDeleted, fixture.publisher.events[0].Event)
}

func TestAppointmentFormUsecase_Open_PrefillsLocalDateTime(t *testing.T) {
	fixture := newFormFixture()
	fixture.appointments.appointments[55] = &models.Appointment{
		ID:         55,
		PacienteID: 1,
		MedicoID:   10,
		DataHora:   time.Date(2024, 6, 18, 17, 30, 0, 0, time.UTC),
		Status:     constvars.AppointmentStatusScheduled,
	}

	session, err := fixture.usecase.Open(context.Background(), &requests.OpenForm{
		Mode:          constvars.FormModeView,
		AppointmentID: int64Ptr(55),
	})

	assert.NoError(t, err)
	assert.Equal(t, "2024-06-18T14:30", session.Fields.DataHora, "stored instant renders in the service timezone")
	assert.Equal(t, constvars.PlanLabelActive, session.PlanLabel)
	assert.Equal(t, "Plano Ouro", session.PlanName)
	assert.False(t, session.SubmitDisabled, "read-only sessions keep their action button enabled")
}

func TestAppointmentFormUsecase_SelectPatient(t *testing.T) {
	ctx := context.Background()

	t.Run("Selecting an ineligible patient disables submit", func(t *testing.T) {
		fixture := newFormFixture()
		sessionID := fixture.openSession(t, constvars.FormModeCreate, nil)

		result, err := fixture.usecase.SelectPatient(ctx, sessionID, &requests.SelectPatient{PacienteID: 2})

		assert.NoError(t, err)
		assert.Equal(t, constvars.PlanLabelNone, result.PlanLabel)
		assert.True(t, result.SubmitDisabled)
	})

	t.Run("Selecting an eligible patient enables submit and names the plan", func(t *testing.T) {
		fixture := newFormFixture()
		sessionID := fixture.openSession(t, constvars.FormModeCreate, nil)

		result, err := fixture.usecase.SelectPatient(ctx, sessionID, &requests.SelectPatient{PacienteID: 1})

		assert.NoError(t, err)
		assert.Equal(t, constvars.PlanLabelActive, result.PlanLabel)
		assert.Equal(t, "Plano Ouro", result.PlanName)
		assert.False(t, result.SubmitDisabled)
	})

	t.Run("Read-only sessions refuse re-selection", func(t *testing.T) {
		fixture := newFormFixture()
		fixture.appointments.appointments[55] = &models.Appointment{
			ID: 55, PacienteID: 1, MedicoID: 10,
			DataHora: time.Date(2024, 6, 18, 13, 0, 0, 0, time.UTC),
		}
		sessionID := fixture.openSession(t, constvars.FormModeView, int64Ptr(55))

		_, err := fixture.usecase.SelectPatient(ctx, sessionID, &requests.SelectPatient{PacienteID: 2})

		assert.Equal(t, constvars.ErrClientFormSessionReadOnly, clientMessage(t, err))
	})
}

func TestAppointmentFormUsecase_Dismiss(t *testing.T) {
	ctx := context.Background()
	fixture := newFormFixture()
	sessionID := fixture.openSession(t, constvars.FormModeCreate, nil)

	assert.NoError(t, fixture.usecase.Dismiss(ctx, sessionID))

	_, err := fixture.sessions.Find(ctx, sessionID)
	assert.Error(t, err)

	// Dismissing again is harmless.
	assert.NoError(t, fixture.usecase.Dismiss(ctx, sessionID))
}
