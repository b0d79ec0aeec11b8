package service

import (
	"context"

	"libraryhub/infras/kafka"
	"libraryhub/internal/domains/booking/model"
	"libraryhub/internal/domains/booking/model/dto"

	"github.com/rs/zerolog/log"
)

const (
	EventBookingCreated   = "booking.created"
	EventBookingUpdated   = "booking.updated"
	EventBookingCancelled = "booking.cancelled"
	EventBookingDeleted   = "booking.deleted"
)

// publish emits a booking event after the write has committed. The booking is
// already durable, so a failed publish is logged and swallowed.
func (s *serviceImpl) publish(ctx context.Context, eventType string, booking model.Booking) {
	err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.Booking, kafka.Message{
		Key:   booking.ID,
		Value: dto.NewEvent(eventType, booking),
	})
	if err != nil {
		log.Error().Err(err).Str("event", eventType).Str("bookingId", booking.ID).Msg("failed to publish booking event")
	}
}
