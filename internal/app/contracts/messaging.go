package contracts

import (
	"context"
	"hospital-records-service/internal/app/models"
)

type EventPublisher interface {
	PublishPatientEvent(ctx context.Context, event models.PatientEvent) error
	Close() error
}
