package middlewares

import (
	"clinica-service/internal/pkg/constvars"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// AccessLog writes one flat line per request to the logrus access logger.
// The zap logger carries the structured application events; this stream is
// what ships to the plain-text access log file.
func (m *Middlewares) AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rec, r)

		m.RequestLogger.WithFields(logrus.Fields{
			constvars.LoggingMethodKey:     r.Method,
			constvars.LoggingEndpointKey:   r.URL.Path,
			constvars.LoggingStatusCodeKey: rec.statusCode,
			constvars.LoggingRemoteAddrKey: r.RemoteAddr,
			constvars.LoggingDurationKey:   time.Since(start).String(),
		}).Info("access")
	})
}
