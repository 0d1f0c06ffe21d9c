package rest_appointments

import (
	"bytes"
	"clinica-service/internal/app/contracts"
	"clinica-service/internal/app/models"
	"clinica-service/internal/pkg/constvars"
	"clinica-service/internal/pkg/exceptions"
	"clinica-service/internal/pkg/utils"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	appointmentRestClientInstance contracts.AppointmentRestClient
	onceAppointmentRestClient     sync.Once
)

type appointmentRestClient struct {
	BaseUrl string
	Log     *zap.Logger
}

func NewAppointmentRestClient(baseUrl string, logger *zap.Logger) contracts.AppointmentRestClient {
	onceAppointmentRestClient.Do(func() {
		client := &appointmentRestClient{
			BaseUrl: baseUrl + constvars.ResourceConsultas,
			Log:     logger,
		}
		appointmentRestClientInstance = client
	})
	return appointmentRestClientInstance
}

func (c *appointmentRestClient) FindAll(ctx context.Context, startDate, endDate string) ([]models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	endpoint := c.BaseUrl
	if startDate != "" && endDate != "" {
		query := url.Values{}
		query.Set(constvars.QueryParamDataIni, startDate)
		query.Set(constvars.QueryParamDataFinal, endDate)
		endpoint = fmt.Sprintf("%s?%s", c.BaseUrl, query.Encode())
	}
	c.Log.Info("appointmentRestClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBackendUrlKey, endpoint),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("appointmentRestClient.FindAll error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, c.backendError(requestID, resp)
	}

	var appointments []models.Appointment
	err = json.NewDecoder(resp.Body).Decode(&appointments)
	if err != nil {
		c.Log.Error("appointmentRestClient.FindAll error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceConsultas)
	}

	c.Log.Info("appointmentRestClient.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentCountKey, len(appointments)),
	)
	return appointments, nil
}

func (c *appointmentRestClient) FindByID(ctx context.Context, appointmentID int64) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentRestClient.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	endpoint := fmt.Sprintf("%s/%d", c.BaseUrl, appointmentID)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("appointmentRestClient.FindByID error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, c.backendError(requestID, resp)
	}

	appointment := new(models.Appointment)
	err = json.NewDecoder(resp.Body).Decode(appointment)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceConsultas)
	}
	return appointment, nil
}

func (c *appointmentRestClient) Create(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	return c.save(ctx, constvars.MethodPost, c.BaseUrl, appointment, constvars.StatusCreated)
}

func (c *appointmentRestClient) Update(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	endpoint := fmt.Sprintf("%s/%d", c.BaseUrl, appointment.ID)
	return c.save(ctx, constvars.MethodPut, endpoint, appointment, constvars.StatusOK)
}

func (c *appointmentRestClient) save(ctx context.Context, method, endpoint string, appointment *models.Appointment, wantStatus int) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentRestClient.save called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, method),
		zap.String(constvars.LoggingBackendUrlKey, endpoint),
	)

	requestJSON, err := json.Marshal(appointment)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("appointmentRestClient.save error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus && resp.StatusCode != constvars.StatusOK {
		return nil, c.backendError(requestID, resp)
	}

	saved := new(models.Appointment)
	err = json.NewDecoder(resp.Body).Decode(saved)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceConsultas)
	}

	c.Log.Info("appointmentRestClient.save succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, saved.ID),
	)
	return saved, nil
}

func (c *appointmentRestClient) Delete(ctx context.Context, appointmentID int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentRestClient.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	endpoint := fmt.Sprintf("%s/%d", c.BaseUrl, appointmentID)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodDelete, endpoint, nil)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("appointmentRestClient.Delete error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusNoContent {
		return c.backendError(requestID, resp)
	}
	return nil
}

func (c *appointmentRestClient) backendError(requestID string, resp *http.Response) error {
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		bodyBytes = nil
	}
	clientMessage := utils.ParseBackendErrorMessage(bodyBytes, constvars.ErrClientSaveAppointment)
	c.Log.Error("appointmentRestClient backend rejected request",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		zap.String("client_message", clientMessage),
	)
	return exceptions.ErrBackendRejected(resp.StatusCode, clientMessage, constvars.ResourceConsultas)
}
