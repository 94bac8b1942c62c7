package publisher

import (
	"context"

	"go.uber.org/zap"

	"github.com/rl1809/volunteer-checkin/internal/core/domain"
)

// LogPublisher logs check-in events. Used when no brokers are configured.
type LogPublisher struct {
	log *zap.Logger
}

func NewLogPublisher(log *zap.Logger) *LogPublisher {
	return &LogPublisher{log: log}
}

func (p *LogPublisher) PublishCheckIn(_ context.Context, event domain.CheckInEvent) error {
	p.log.Info("volunteer checked in",
		zap.String("registration_id", event.RegistrationID),
		zap.String("slot_id", event.SlotID),
		zap.String("position_id", event.PositionID),
		zap.String("volunteer_id", event.VolunteerID),
		zap.Time("checked_in_at", event.CheckedInAt))
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
