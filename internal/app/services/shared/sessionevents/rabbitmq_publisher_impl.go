package sessionevents

import (
	"context"
	"fmt"
	"meditrack-client/internal/app/contracts"
	"meditrack-client/internal/app/models"
	"meditrack-client/internal/pkg/constvars"
	"meditrack-client/internal/pkg/exceptions"
	"meditrack-client/internal/pkg/utils"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// rabbitMQPublisher publishes session events to a durable queue and waits for
// the broker confirm of each message.
type rabbitMQPublisher struct {
	ch        amqpChannel
	confirms  <-chan amqp.Confirmation
	queueName string
	log       *zap.Logger
	mu        sync.Mutex
}

func NewRabbitMQPublisher(conn *amqp.Connection, queueName string, logger *zap.Logger) (contracts.SessionEventPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		ch.Close()
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		ch.Close()
		return nil, err
	}

	return newRabbitMQPublisher(ch, ch.NotifyPublish(make(chan amqp.Confirmation, 1)), queueName, logger), nil
}

func newRabbitMQPublisher(ch amqpChannel, confirms <-chan amqp.Confirmation, queueName string, logger *zap.Logger) *rabbitMQPublisher {
	return &rabbitMQPublisher{
		ch:        ch,
		confirms:  confirms,
		queueName: queueName,
		log:       logger,
	}
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, event *models.SessionEvent) error {
	requestID := utils.RequestIDFromContext(ctx)
	p.log.Info("rabbitMQPublisher.Publish called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventTypeKey, string(event.Type)),
	)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		MessageId:    event.ID,
		Type:         string(event.Type),
		Timestamp:    event.OccurredAt,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}

	if err := p.ch.PublishWithContext(ctx, "", p.queueName, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}

	select {
	case confirmed, ok := <-p.confirms:
		if !ok || !confirmed.Ack {
			return exceptions.ErrRabbitMQPublishMessage(fmt.Errorf("message not confirmed"), p.queueName)
		}
	case <-ctx.Done():
		return exceptions.ErrRabbitMQPublishMessage(ctx.Err(), p.queueName)
	}

	p.log.Info("rabbitMQPublisher.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventTypeKey, string(event.Type)),
	)
	return nil
}

func (p *rabbitMQPublisher) Close() error {
	return p.ch.Close()
}
