package port

import (
	"context"

	"github.com/rl1809/volunteer-checkin/internal/core/domain"
)

type EventPublisher interface {
	PublishCheckIn(ctx context.Context, event domain.CheckInEvent) error
	Close() error
}
