package appointments

import (
	"clinica-service/internal/app/models"
	"clinica-service/internal/pkg/constvars"
	"clinica-service/internal/pkg/dto/requests"
	"clinica-service/internal/pkg/dto/responses"
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fnAppointmentClient struct {
	stubAppointmentClient
	findAll func(ctx context.Context, startDate, endDate string) ([]models.Appointment, error)
}

func (f *fnAppointmentClient) FindAll(ctx context.Context, startDate, endDate string) ([]models.Appointment, error) {
	return f.findAll(ctx, startDate, endDate)
}

func newListUsecase(findAll func(ctx context.Context, startDate, endDate string) ([]models.Appointment, error)) *appointmentListUsecase {
	return &appointmentListUsecase{
		AppointmentRestClient: &fnAppointmentClient{findAll: findAll},
		PatientRestClient: &stubPatientClient{patients: map[int64]*models.Patient{
			1: {ID: 1, Nome: "Ana"},
		}},
		DoctorRestClient: &stubDoctorClient{doctors: []models.Doctor{{ID: 10, Nome: "Dr. House"}}},
		Log:              zap.NewNop(),
		Location:         testLocation,
		// Saturday June 15, 2024.
		now: func() time.Time { return time.Date(2024, 6, 15, 10, 0, 0, 0, testLocation) },
	}
}

func TestAppointmentListUsecase_ResolveRange(t *testing.T) {
	tests := []struct {
		name      string
		filter    requests.AppointmentFilter
		wantStart string
		wantEnd   string
	}{
		{
			name:      "Hoje covers a single day",
			filter:    requests.AppointmentFilter{Periodo: constvars.FilterPeriodToday},
			wantStart: "2024-06-15",
			wantEnd:   "2024-06-15",
		},
		{
			name:      "Semana starts on Sunday",
			filter:    requests.AppointmentFilter{Periodo: constvars.FilterPeriodWeek},
			wantStart: "2024-06-09",
			wantEnd:   "2024-06-15",
		},
		{
			name:      "Mes covers the whole month",
			filter:    requests.AppointmentFilter{Periodo: constvars.FilterPeriodMonth},
			wantStart: "2024-06-01",
			wantEnd:   "2024-06-30",
		},
		{
			name:      "Ano covers the whole year",
			filter:    requests.AppointmentFilter{Periodo: constvars.FilterPeriodYear},
			wantStart: "2024-01-01",
			wantEnd:   "2024-12-31",
		},
		{
			name:      "Explicit bounds pass through when both are present",
			filter:    requests.AppointmentFilter{DataInicial: "2024-03-01", DataFinal: "2024-03-31"},
			wantStart: "2024-03-01",
			wantEnd:   "2024-03-31",
		},
		{
			name:   "A single bound is ignored",
			filter: requests.AppointmentFilter{DataInicial: "2024-03-01"},
		},
		{
			name:   "No filter means no range",
			filter: requests.AppointmentFilter{},
		},
		{
			name:      "Periodo wins over explicit bounds",
			filter:    requests.AppointmentFilter{Periodo: constvars.FilterPeriodToday, DataInicial: "2024-01-01", DataFinal: "2024-12-31"},
			wantStart: "2024-06-15",
			wantEnd:   "2024-06-15",
		},
	}

	usecase := newListUsecase(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := usecase.resolveRange(&tt.filter)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}

	t.Run("Mes in a leap February ends on the 29th", func(t *testing.T) {
		usecase := newListUsecase(nil)
		// Thursday February 15, 2024.
		usecase.now = func() time.Time { return time.Date(2024, 2, 15, 10, 0, 0, 0, testLocation) }

		start, end := usecase.resolveRange(&requests.AppointmentFilter{Periodo: constvars.FilterPeriodMonth})
		assert.Equal(t, "2024-02-01", start)
		assert.Equal(t, "2024-02-29", end)

		start, end = usecase.resolveRange(&requests.AppointmentFilter{Periodo: constvars.FilterPeriodWeek})
		assert.Equal(t, "2024-02-11", start)
		assert.Equal(t, "2024-02-17", end)
	})
}

func TestAppointmentListUsecase_Refresh(t *testing.T) {
	ctx := context.Background()
	description := "Retorno"

	t.Run("Rows carry resolved names, local formatting and status labels", func(t *testing.T) {
		usecase := newListUsecase(func(ctx context.Context, startDate, endDate string) ([]models.Appointment, error) {
			return []models.Appointment{
				{
					ID:         1,
					PacienteID: 1,
					MedicoID:   10,
					DataHora:   time.Date(2024, 6, 20, 17, 30, 0, 0, time.UTC),
					Descricao:  &description,
					Status:     constvars.AppointmentStatusScheduled,
				},
				{
					ID:         2,
					PacienteID: 999,
					MedicoID:   999,
					DataHora:   time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC),
					Status:     "remarcada",
				},
			}, nil
		})

		list, err := usecase.Refresh(ctx, &requests.AppointmentFilter{})

		assert.NoError(t, err)
		assert.Len(t, list.Agendamentos, 2)

		first := list.Agendamentos[0]
		assert.Equal(t, "Ana", first.PacienteNome)
		assert.Equal(t, "Dr. House", first.MedicoNome)
		assert.Equal(t, "2024-06-20T14:30", first.DataHora)
		assert.Equal(t, "20/06/2024 14:30", first.DataHoraFormatada)
		assert.Equal(t, "Agendada", first.StatusLabel)
		assert.Equal(t, "Retorno", first.Descricao)

		second := list.Agendamentos[1]
		assert.Empty(t, second.PacienteNome)
		assert.Equal(t, "remarcada", second.StatusLabel, "unknown statuses pass through")
	})

	t.Run("Embedded references win over list lookups", func(t *testing.T) {
		usecase := newListUsecase(func(ctx context.Context, startDate, endDate string) ([]models.Appointment, error) {
			return []models.Appointment{{
				ID:         1,
				PacienteID: 1,
				MedicoID:   10,
				DataHora:   time.Date(2024, 6, 20, 17, 30, 0, 0, time.UTC),
				Status:     constvars.AppointmentStatusScheduled,
				Paciente:   &models.Patient{ID: 1, Nome: "Ana Clara"},
				Medico:     &models.Doctor{ID: 10, Nome: "Dra. Cuddy"},
			}}, nil
		})

		list, err := usecase.Refresh(ctx, &requests.AppointmentFilter{})

		assert.NoError(t, err)
		assert.Equal(t, "Ana Clara", list.Agendamentos[0].PacienteNome)
		assert.Equal(t, "Dra. Cuddy", list.Agendamentos[0].MedicoNome)
	})

	t.Run("A stale fetch does not overwrite a newer result", func(t *testing.T) {
		var usecase *appointmentListUsecase
		first := true
		usecase = newListUsecase(func(ctx context.Context, startDate, endDate string) ([]models.Appointment, error) {
			if first {
				first = false
				// A newer refresh finishes while this one is in flight.
				atomic.AddUint64(&usecase.fetchToken, 1)
				usecase.lastList = &responses.AppointmentList{
					Agendamentos: []responses.Appointment{{ID: 42}},
				}
				return []models.Appointment{{ID: 1, DataHora: time.Now()}}, nil
			}
			return nil, nil
		})

		list, err := usecase.Refresh(ctx, &requests.AppointmentFilter{})

		assert.NoError(t, err)
		assert.Len(t, list.Agendamentos, 1)
		assert.Equal(t, int64(42), list.Agendamentos[0].ID, "stale response must be discarded")
	})

	t.Run("ClearFilters refreshes without a range", func(t *testing.T) {
		var gotStart, gotEnd string
		usecase := newListUsecase(func(ctx context.Context, startDate, endDate string) ([]models.Appointment, error) {
			gotStart, gotEnd = startDate, endDate
			return nil, nil
		})

		list, err := usecase.ClearFilters(ctx)

		assert.NoError(t, err)
		assert.Empty(t, gotStart)
		assert.Empty(t, gotEnd)
		assert.Empty(t, list.Agendamentos)
	})
}
