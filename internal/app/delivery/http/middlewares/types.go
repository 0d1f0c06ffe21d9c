package middlewares

import (
	"clinica-service/internal/app/config"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	RequestLogger  *logrus.Logger
	InternalConfig *config.InternalConfig
}
