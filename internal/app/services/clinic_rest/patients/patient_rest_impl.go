package rest_patients

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
	patientRestClientInstance contracts.PatientRestClient
	oncePatientRestClient     sync.Once
)

type patientRestClient struct {
	BaseUrl string
	Log     *zap.Logger
}

func NewPatientRestClient(baseUrl string, logger *zap.Logger) contracts.PatientRestClient {
	oncePatientRestClient.Do(func() {
		client := &patientRestClient{
			BaseUrl: baseUrl + constvars.ResourcePacientes,
			Log:     logger,
		}
		patientRestClientInstance = client
	})
	return patientRestClientInstance
}

// patientWire accepts every plan-association alias the backend has shipped
// over time and collapses them into the canonical embedded-plan shape.
type patientWire struct {
	models.Patient
	PlanoSaudeCamel *models.HealthPlan `json:"planoSaude"`
	PlanoSaudeUpper *models.HealthPlan `json:"PlanoSaude"`
}

func (w *patientWire) canonical() models.Patient {
	patient := w.Patient
	if patient.PlanoSaude == nil {
		if w.PlanoSaudeCamel != nil {
			patient.PlanoSaude = w.PlanoSaudeCamel
		} else if w.PlanoSaudeUpper != nil {
			patient.PlanoSaude = w.PlanoSaudeUpper
		}
	}
	if patient.PlanoSaude != nil && patient.PlanoID == nil {
		planID := patient.PlanoSaude.ID
		patient.PlanoID = &planID
	}
	return patient
}

func (c *patientRestClient) FindAll(ctx context.Context, includePlan bool) ([]models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	url := c.BaseUrl
	if includePlan {
		url = fmt.Sprintf("%s?%s", c.BaseUrl, constvars.QueryIncludePlano)
	}
	c.Log.Info("patientRestClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBackendUrlKey, url),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, url, nil)
	if err != nil {
		c.Log.Error("patientRestClient.FindAll error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("patientRestClient.FindAll error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, c.backendError(requestID, resp)
	}

	var wirePatients []patientWire
	err = json.NewDecoder(resp.Body).Decode(&wirePatients)
	if err != nil {
		c.Log.Error("patientRestClient.FindAll error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePacientes)
	}

	patients := make([]models.Patient, len(wirePatients))
	for i := range wirePatients {
		patients[i] = wirePatients[i].canonical()
	}

	c.Log.Info("patientRestClient.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("paciente_count", len(patients)),
	)
	return patients, nil
}

func (c *patientRestClient) FindByID(ctx context.Context, patientID int64) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientRestClient.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)

	url := fmt.Sprintf("%s/%d", c.BaseUrl, patientID)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, url, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("patientRestClient.FindByID error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, c.backendError(requestID, resp)
	}

	wirePatient := new(patientWire)
	err = json.NewDecoder(resp.Body).Decode(wirePatient)
	if err != nil {
		c.Log.Error("patientRestClient.FindByID error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePacientes)
	}

	patient := wirePatient.canonical()
	return &patient, nil
}

func (c *patientRestClient) Create(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	return c.save(ctx, constvars.MethodPost, c.BaseUrl, patient, constvars.StatusCreated)
}

func (c *patientRestClient) Update(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	url := fmt.Sprintf("%s/%d", c.BaseUrl, patient.ID)
	return c.save(ctx, constvars.MethodPut, url, patient, constvars.StatusOK)
}

func (c *patientRestClient) save(ctx context.Context, method, url string, patient *models.Patient, wantStatus int) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientRestClient.save called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, method),
		zap.String(constvars.LoggingBackendUrlKey, url),
	)

	requestJSON, err := json.Marshal(patient)
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
		c.Log.Error("patientRestClient.save error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	// Some backend builds answer create with 200 instead of 201; both count.
	if resp.StatusCode != wantStatus && resp.StatusCode != constvars.StatusOK {
		return nil, c.backendError(requestID, resp)
	}

	wirePatient := new(patientWire)
	err = json.NewDecoder(resp.Body).Decode(wirePatient)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePacientes)
	}

	saved := wirePatient.canonical()
	c.Log.Info("patientRestClient.save succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, saved.ID),
	)
	return &saved, nil
}

func (c *patientRestClient) Delete(ctx context.Context, patientID int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientRestClient.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)

	url := fmt.Sprintf("%s/%d", c.BaseUrl, patientID)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodDelete, url, nil)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("patientRestClient.Delete error sending HTTP request",
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

func (c *patientRestClient) backendError(requestID string, resp *http.Response) error {
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		bodyBytes = nil
	}
	clientMessage := utils.ParseBackendErrorMessage(bodyBytes, constvars.ErrClientCannotProcessRequest)
	c.Log.Error("patientRestClient backend rejected request",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		zap.String("client_message", clientMessage),
	)
	return exceptions.ErrBackendRejected(resp.StatusCode, clientMessage, constvars.ResourcePacientes)
}
