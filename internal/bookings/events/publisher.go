package events

import (
	"context"

	"fleetbook/pkg/kafka"
	"fleetbook/pkg/logger"
	"fleetbook/pkg/model"
)

const (
	EventBookingCreated = "booking.created"

	sourceService = "fleetbook-rental"
)

// Publisher emits booking lifecycle events. Publishing is best-effort:
// admission never fails or blocks on the event path.
type Publisher interface {
	BookingCreated(ctx context.Context, booking *model.Booking) error
}

type kafkaPublisher struct {
	producer *kafka.Producer
	log      *logger.Logger
}

func NewKafkaPublisher(producer *kafka.Producer, log *logger.Logger) Publisher {
	return &kafkaPublisher{
		producer: producer,
		log:      log,
	}
}

func (p *kafkaPublisher) BookingCreated(ctx context.Context, booking *model.Booking) error {
	msg, err := kafka.NewMessage().
		WithKey(booking.VehicleID).
		WithValue(booking).
		WithEventType(EventBookingCreated).
		WithSource(sourceService).
		Build()
	if err != nil {
		return err
	}

	return p.producer.Publish(ctx, msg)
}

type noopPublisher struct{}

// NewNoopPublisher is used when no Kafka brokers are configured.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) BookingCreated(context.Context, *model.Booking) error {
	return nil
}
