package rest_doctors

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
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	doctorRestClientInstance contracts.DoctorRestClient
	onceDoctorRestClient     sync.Once
)

type doctorRestClient struct {
	BaseUrl string
	Log     *zap.Logger
}

func NewDoctorRestClient(baseUrl string, logger *zap.Logger) contracts.DoctorRestClient {
	onceDoctorRestClient.Do(func() {
		client := &doctorRestClient{
			BaseUrl: baseUrl + constvars.ResourceMedicos,
			Log:     logger,
		}
		doctorRestClientInstance = client
	})
	return doctorRestClientInstance
}

func (c *doctorRestClient) FindAll(ctx context.Context) ([]models.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("doctorRestClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBackendUrlKey, c.BaseUrl),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseUrl, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("doctorRestClient.FindAll error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, c.backendError(requestID, resp)
	}

	var doctors []models.Doctor
	err = json.NewDecoder(resp.Body).Decode(&doctors)
	if err != nil {
		c.Log.Error("doctorRestClient.FindAll error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceMedicos)
	}

	c.Log.Info("doctorRestClient.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("medico_count", len(doctors)),
	)
	return doctors, nil
}

func (c *doctorRestClient) Create(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error) {
	return c.save(ctx, constvars.MethodPost, c.BaseUrl, doctor, constvars.StatusCreated)
}

func (c *doctorRestClient) Update(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error) {
	url := fmt.Sprintf("%s/%d", c.BaseUrl, doctor.ID)
	return c.save(ctx, constvars.MethodPut, url, doctor, constvars.StatusOK)
}

func (c *doctorRestClient) save(ctx context.Context, method, url string, doctor *models.Doctor, wantStatus int) (*models.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("doctorRestClient.save called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, method),
		zap.String(constvars.LoggingBackendUrlKey, url),
	)

	requestJSON, err := json.Marshal(doctor)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("doctorRestClient.save error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus && resp.StatusCode != constvars.StatusOK {
		return nil, c.backendError(requestID, resp)
	}

	saved := new(models.Doctor)
	err = json.NewDecoder(resp.Body).Decode(saved)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceMedicos)
	}

	c.Log.Info("doctorRestClient.save succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingDoctorIDKey, saved.ID),
	)
	return saved, nil
}

func (c *doctorRestClient) Delete(ctx context.Context, doctorID int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("doctorRestClient.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingDoctorIDKey, doctorID),
	)

	url := fmt.Sprintf("%s/%d", c.BaseUrl, doctorID)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodDelete, url, nil)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("doctorRestClient.Delete error sending HTTP request",
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

func (c *doctorRestClient) backendError(requestID string, resp *http.Response) error {
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		bodyBytes = nil
	}
	clientMessage := utils.ParseBackendErrorMessage(bodyBytes, constvars.ErrClientCannotProcessRequest)
	c.Log.Error("doctorRestClient backend rejected request",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		zap.String("client_message", clientMessage),
	)
	return exceptions.ErrBackendRejected(resp.StatusCode, clientMessage, constvars.ResourceMedicos)
}
