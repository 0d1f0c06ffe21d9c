package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		Redis          *redis.Client
		MongoDB        *mongo.Database
		RabbitMQ       *amqp091.Connection
		Minio          *minio.Client
		Logger         *zap.Logger
		RequestLogger  *logrus.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	InternalConfig struct {
		App    App
		Clinic Clinic
	}

	DriverConfig struct {
		Redis    Redis
		MongoDB  MongoDB
		RabbitMQ RabbitMQ
		Minio    Minio
		Logger   Logger
	}

	App struct {
		Env                         string
		Port                        string
		Version                     string
		Timezone                    string
		EndpointPrefix              string
		MaxRequests                 int
		ShutdownTimeoutInSeconds    int
		RequestTimeoutInSeconds     int
		FormSessionTTLInMinutes     int
		RateLimitBlockTimeInSeconds int
		NotificationQueue           string
		ReportExportBucket          string
		ReportRequestsPerSecond     int
	}

	Clinic struct {
		BaseUrl string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}
	MongoDB struct {
		Host     string
		Port     string
		DbName   string
		Username string
		Password string
	}
	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}
	Minio struct {
		Host     string
		Port     string
		Username string
		Password string
		UseSSL   bool
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
