package messaging

import (
	"context"
	"errors"
	"hospital-records-service/internal/app/models"
	"hospital-records-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePublishChannel struct {
	published    []amqp.Publishing
	confirmation *amqp.DeferredConfirmation
	err          error
	closed       bool
}

func (f *fakePublishChannel) PublishWithDeferredConfirmWithContext(_ context.Context, _, _ string, _, _ bool, msg amqp.Publishing) (*amqp.DeferredConfirmation, error) {
	f.published = append(f.published, msg)
	if f.err != nil {
		return nil, f.err
	}
	return f.confirmation, nil
}

func (f *fakePublishChannel) Close() error {
	f.closed = true
	return nil
}

func newTestEvent() models.PatientEvent {
	return models.PatientEvent{
		Event:      constvars.PatientEventCreated,
		PatientID:  "65a000000000000000000001",
		Email:      "jane@example.com",
		OccurredAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestPatientEventPublisher_PublishPatientEvent(t *testing.T) {
	t.Run("Message shape", func(t *testing.T) {
		ch := &fakePublishChannel{err: errors.New("stop after publish")}
		publisher := newPatientEventPublisher(ch, "patients.events", zap.NewNop())

		_ = publisher.PublishPatientEvent(context.Background(), newTestEvent())

		require.Len(t, ch.published, 1)
		msg := ch.published[0]
		assert.Equal(t, constvars.MIMEApplicationJSON, msg.ContentType)
		assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
		assert.Equal(t, constvars.PatientEventCreated, msg.Type)

		var event models.PatientEvent
		require.NoError(t, json.Unmarshal(msg.Body, &event))
		assert.Equal(t, "65a000000000000000000001", event.PatientID)
	})

	t.Run("Publish failure", func(t *testing.T) {
		ch := &fakePublishChannel{err: amqp.ErrClosed}
		publisher := newPatientEventPublisher(ch, "patients.events", zap.NewNop())

		err := publisher.PublishPatientEvent(context.Background(), newTestEvent())

		require.Error(t, err)
		assert.ErrorIs(t, err, amqp.ErrClosed)
	})

	t.Run("Channel without confirms", func(t *testing.T) {
		ch := &fakePublishChannel{}
		publisher := newPatientEventPublisher(ch, "patients.events", zap.NewNop())

		err := publisher.PublishPatientEvent(context.Background(), newTestEvent())

		assert.Error(t, err)
	})

	t.Run("Each publish waits on its own confirmation", func(t *testing.T) {
		// A zero DeferredConfirmation never completes, so only the context can end the wait.
		ch := &fakePublishChannel{confirmation: &amqp.DeferredConfirmation{DeliveryTag: 1}}
		publisher := newPatientEventPublisher(ch, "patients.events", zap.NewNop())

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		err := publisher.PublishPatientEvent(ctx, newTestEvent())
		require.Error(t, err)
		assert.ErrorIs(t, err, context.DeadlineExceeded)

		ch.confirmation = &amqp.DeferredConfirmation{DeliveryTag: 2}
		ctx2, cancel2 := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel2()
		err = publisher.PublishPatientEvent(ctx2, newTestEvent())
		require.Error(t, err)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Len(t, ch.published, 2)
	})
}

func TestPatientEventPublisher_Close(t *testing.T) {
	ch := &fakePublishChannel{}
	publisher := newPatientEventPublisher(ch, "patients.events", zap.NewNop())

	require.NoError(t, publisher.Close())
	assert.True(t, ch.closed)
}
