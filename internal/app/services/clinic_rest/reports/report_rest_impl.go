package rest_reports

import (
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
	"golang.org/x/time/rate"
)

var (
	reportRestClientInstance contracts.ReportRestClient
	onceReportRestClient     sync.Once
)

type reportRestClient struct {
	BaseUrl string
	Log     *zap.Logger
	Limiter *rate.Limiter
}

// NewReportRestClient throttles aggregation queries so a burst of report
// refreshes cannot overload the backend's busca_agendamentos endpoint.
func NewReportRestClient(baseUrl string, requestsPerSecond int, logger *zap.Logger) contracts.ReportRestClient {
	onceReportRestClient.Do(func() {
		client := &reportRestClient{
			BaseUrl: baseUrl + constvars.ResourceRelatorios,
			Log:     logger,
			Limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond),
		}
		reportRestClientInstance = client
	})
	return reportRestClientInstance
}

func (c *reportRestClient) FetchBuckets(ctx context.Context, startDate, endDate string) ([]models.ReportBucket, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if err := c.Limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrServerDeadlineExceeded(err)
	}

	query := url.Values{}
	query.Set(constvars.QueryParamDataIni, startDate)
	query.Set(constvars.QueryParamDataFinal, endDate)
	endpoint := fmt.Sprintf("%s?%s", c.BaseUrl, query.Encode())

	c.Log.Info("reportRestClient.FetchBuckets called",
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
		c.Log.Error("reportRestClient.FetchBuckets error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		bodyBytes, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			bodyBytes = nil
		}
		clientMessage := utils.ParseBackendErrorMessage(bodyBytes, constvars.ErrClientCannotProcessRequest)
		c.Log.Error("reportRestClient backend rejected request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.String("client_message", clientMessage),
		)
		return nil, exceptions.ErrBackendRejected(resp.StatusCode, clientMessage, constvars.ResourceRelatorios)
	}

	var buckets []models.ReportBucket
	err = json.NewDecoder(resp.Body).Decode(&buckets)
	if err != nil {
		c.Log.Error("reportRestClient.FetchBuckets error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceRelatorios)
	}

	c.Log.Info("reportRestClient.FetchBuckets succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingBucketCountKey, len(buckets)),
	)
	return buckets, nil
}
