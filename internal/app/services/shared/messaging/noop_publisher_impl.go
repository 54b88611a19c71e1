package messaging

import (
	"context"
	"hospital-records-service/internal/app/contracts"
	"hospital-records-service/internal/app/models"
)

// noopPublisher is used when RABBITMQ_ENABLED is false.
type noopPublisher struct{}

func NewNoopEventPublisher() contracts.EventPublisher {
	return noopPublisher{}
}

func (noopPublisher) PublishPatientEvent(ctx context.Context, event models.PatientEvent) error {
	return nil
}

func (noopPublisher) Close() error {
	return nil
}
