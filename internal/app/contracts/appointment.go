package contracts

import (
	"clinica-service/internal/app/models"
	"clinica-service/internal/pkg/dto/requests"
	"clinica-service/internal/pkg/dto/responses"
	"context"
)

type AppointmentRestClient interface {
	// FindAll range-scopes the query when both bounds (YYYY-MM-DD) are
	// non-empty; otherwise it fetches the unfiltered collection.
	FindAll(ctx context.Context, startDate, endDate string) ([]models.Appointment, error)
	FindByID(ctx context.Context, appointmentID int64) (*models.Appointment, error)
	Create(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)
	Update(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)
	Delete(ctx context.Context, appointmentID int64) error
}

// AppointmentFormUsecase drives the scheduling form's modal lifecycle:
// open, patient re-selection, submit, dismiss.
type AppointmentFormUsecase interface {
	Open(ctx context.Context, request *requests.OpenForm) (*responses.FormSession, error)
	Get(ctx context.Context, sessionID string) (*responses.FormSession, error)
	SelectPatient(ctx context.Context, sessionID string, request *requests.SelectPatient) (*responses.Eligibility, error)
	Submit(ctx context.Context, sessionID string, request *requests.SubmitForm) error
	Dismiss(ctx context.Context, sessionID string) error
}

type AppointmentListUsecase interface {
	Refresh(ctx context.Context, filter *requests.AppointmentFilter) (*responses.AppointmentList, error)
	ClearFilters(ctx context.Context) (*responses.AppointmentList, error)
}
