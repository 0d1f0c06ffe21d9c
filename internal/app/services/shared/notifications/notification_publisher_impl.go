package notifications

import (
	"clinica-service/internal/app/contracts"
	"clinica-service/internal/pkg/constvars"
	"clinica-service/internal/pkg/exceptions"
	"context"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

var (
	notificationPublisherInstance contracts.NotificationPublisher
	onceNotificationPublisher     sync.Once
)

type notificationPublisher struct {
	connection *amqp091.Connection
	queueName  string
	Log        *zap.Logger
}

func NewNotificationPublisher(connection *amqp091.Connection, queueName string, logger *zap.Logger) contracts.NotificationPublisher {
	onceNotificationPublisher.Do(func() {
		notificationPublisherInstance = &notificationPublisher{
			connection: connection,
			queueName:  queueName,
			Log:        logger,
		}
	})
	return notificationPublisherInstance
}

func (p *notificationPublisher) PublishAppointmentEvent(ctx context.Context, event *contracts.AppointmentEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	p.Log.Info("notificationPublisher.PublishAppointmentEvent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("event", event.Event),
		zap.Int64(constvars.LoggingAppointmentIDKey, event.AppointmentID),
	)

	channel, err := p.connection.Channel()
	if err != nil {
		return exceptions.ErrPublishMessage(err)
	}
	defer channel.Close()

	// Durable queue so lifecycle events survive a broker restart.
	queue, err := channel.QueueDeclare(p.queueName, true, false, false, false, nil)
	if err != nil {
		return exceptions.ErrPublishMessage(err)
	}

	eventJSON, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = channel.PublishWithContext(ctx, "", queue.Name, false, false, amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		DeliveryMode: amqp091.Persistent,
		Body:         eventJSON,
	})
	if err != nil {
		p.Log.Error("notificationPublisher.PublishAppointmentEvent error publishing",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPublishMessage(err)
	}
	return nil
}
