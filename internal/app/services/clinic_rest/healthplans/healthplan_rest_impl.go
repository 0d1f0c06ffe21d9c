package rest_healthplans

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
	healthPlanRestClientInstance contracts.HealthPlanRestClient
	onceHealthPlanRestClient     sync.Once
)

type healthPlanRestClient struct {
	BaseUrl string
	Log     *zap.Logger
}

func NewHealthPlanRestClient(baseUrl string, logger *zap.Logger) contracts.HealthPlanRestClient {
	onceHealthPlanRestClient.Do(func() {
		client := &healthPlanRestClient{
			BaseUrl: baseUrl + constvars.ResourcePlanoSaude,
			Log:     logger,
		}
		healthPlanRestClientInstance = client
	})
	return healthPlanRestClientInstance
}

func (c *healthPlanRestClient) FindByID(ctx context.Context, planID int64) (*models.HealthPlan, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("healthPlanRestClient.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPlanIDKey, planID),
	)

	url := fmt.Sprintf("%s/%d", c.BaseUrl, planID)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, url, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("healthPlanRestClient.FindByID error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, c.backendError(requestID, resp)
	}

	plan := new(models.HealthPlan)
	err = json.NewDecoder(resp.Body).Decode(plan)
	if err != nil {
		c.Log.Error("healthPlanRestClient.FindByID error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePlanoSaude)
	}
	return plan, nil
}

func (c *healthPlanRestClient) Create(ctx context.Context, plan *models.HealthPlan) (*models.HealthPlan, error) {
	return c.save(ctx, constvars.MethodPost, c.BaseUrl, plan, constvars.StatusCreated)
}

func (c *healthPlanRestClient) Update(ctx context.Context, plan *models.HealthPlan) (*models.HealthPlan, error) {
	url := fmt.Sprintf("%s/%d", c.BaseUrl, plan.ID)
	return c.save(ctx, constvars.MethodPut, url, plan, constvars.StatusOK)
}

func (c *healthPlanRestClient) save(ctx context.Context, method, url string, plan *models.HealthPlan, wantStatus int) (*models.HealthPlan, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("healthPlanRestClient.save called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, method),
		zap.String(constvars.LoggingBackendUrlKey, url),
	)

	requestJSON, err := json.Marshal(plan)
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
		c.Log.Error("healthPlanRestClient.save error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus && resp.StatusCode != constvars.StatusOK {
		return nil, c.backendError(requestID, resp)
	}

	saved := new(models.HealthPlan)
	err = json.NewDecoder(resp.Body).Decode(saved)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePlanoSaude)
	}

	c.Log.Info("healthPlanRestClient.save succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPlanIDKey, saved.ID),
	)
	return saved, nil
}

func (c *healthPlanRestClient) backendError(requestID string, resp *http.Response) error {
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		bodyBytes = nil
	}
	clientMessage := utils.ParseBackendErrorMessage(bodyBytes, constvars.ErrClientCannotProcessRequest)
	c.Log.Error("healthPlanRestClient backend rejected request",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		zap.String("client_message", clientMessage),
	)
	return exceptions.ErrBackendRejected(resp.StatusCode, clientMessage, constvars.ResourcePlanoSaude)
}
