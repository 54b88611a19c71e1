package messaging

import (
	"context"
	"fmt"
	"hospital-records-service/internal/app/contracts"
	"hospital-records-service/internal/app/models"
	"hospital-records-service/internal/pkg/constvars"
	"hospital-records-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// publishChannel is the part of *amqp.Channel the publisher needs.
type publishChannel interface {
	PublishWithDeferredConfirmWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) (*amqp.DeferredConfirmation, error)
	Close() error
}

// patientEventPublisher publishes patient lifecycle events to a durable queue
// with publisher confirms. Each publish waits on its own deferred confirmation,
// so a confirmation that arrives after a timeout is never read by a later publish.
type patientEventPublisher struct {
	ch    publishChannel
	log   *zap.Logger
	queue string
}

func NewPatientEventPublisher(conn *amqp.Connection, queue string, log *zap.Logger) (contracts.EventPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, exceptions.ErrRabbitMQOpenChannel(err)
	}

	_, err = ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	)
	if err != nil {
		ch.Close()
		return nil, exceptions.ErrRabbitMQOpenChannel(err)
	}

	if err := ch.Confirm(false); err != nil {
		ch.Close()
		return nil, exceptions.ErrRabbitMQOpenChannel(err)
	}

	return newPatientEventPublisher(ch, queue, log), nil
}

func newPatientEventPublisher(ch publishChannel, queue string, log *zap.Logger) *patientEventPublisher {
	return &patientEventPublisher{
		ch:    ch,
		log:   log,
		queue: queue,
	}
}

func (p *patientEventPublisher) PublishPatientEvent(ctx context.Context, event models.PatientEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Type:         event.Event,
		Timestamp:    event.OccurredAt,
	}

	confirmation, err := p.ch.PublishWithDeferredConfirmWithContext(ctx, "", p.queue, false, false, msg)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queue)
	}
	if confirmation == nil {
		return exceptions.ErrRabbitMQPublishMessage(fmt.Errorf("channel is not in confirm mode"), p.queue)
	}

	acked, err := confirmation.WaitContext(ctx)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queue)
	}
	if !acked {
		return exceptions.ErrRabbitMQPublishMessage(fmt.Errorf("delivery tag %d not acknowledged", confirmation.DeliveryTag), p.queue)
	}

	p.log.Debug("patientEventPublisher.PublishPatientEvent succeeded",
		zap.String(constvars.LoggingEventKey, event.Event),
		zap.String(constvars.LoggingPatientIDKey, event.PatientID),
		zap.String(constvars.LoggingQueueKey, p.queue),
	)
	return nil
}

func (p *patientEventPublisher) Close() error {
	return p.ch.Close()
}
