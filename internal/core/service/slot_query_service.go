package service

import (
	"context"
	"fmt"

	"github.com/rl1809/volunteer-checkin/internal/core/domain"
	"github.com/rl1809/volunteer-checkin/internal/port"
)

// SlotQueryService serves read-only views for the check-in pages.
type SlotQueryService struct {
	registry port.RegistryRepository
}

func NewSlotQueryService(registry port.RegistryRepository) *SlotQueryService {
	return &SlotQueryService{registry: registry}
}

// ListRegistrations lists a slot's registrations ordered by email. An empty
// state lists all of them.
func (q *SlotQueryService) ListRegistrations(ctx context.Context, slotID string, state domain.RegistrationState) ([]domain.Registration, error) {
	if state != "" && !state.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidState, state)
	}

	regs, err := q.registry.ListSlotRegistrations(ctx, slotID, state)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return regs, nil
}

// ListPending lists registrations still waiting to check in.
func (q *SlotQueryService) ListPending(ctx context.Context, slotID string) ([]domain.Registration, error) {
	return q.ListRegistrations(ctx, slotID, domain.RegistrationStateRegistered)
}

func (q *SlotQueryService) GetPosition(ctx context.Context, positionID string) (domain.Position, error) {
	p, err := q.registry.GetPosition(ctx, positionID)
	if err != nil {
		return domain.Position{}, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	if p == nil {
		return domain.Position{}, ErrPositionNotFound
	}
	return *p, nil
}
