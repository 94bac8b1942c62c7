package port

import (
	"context"
	"time"

	"github.com/rl1809/volunteer-checkin/internal/core/domain"
)

type RegistryRepository interface {
	// FindRegistration returns the registration joining slotID and the volunteer
	// with the given normalized email, or nil if there is none.
	FindRegistration(ctx context.Context, slotID, email string) (*domain.Registration, error)

	// TransitionIfRegistered moves a registration to checked_in only if it is
	// still registered. committed is false when another caller got there first.
	TransitionIfRegistered(ctx context.Context, registrationID string, at time.Time) (committed bool, err error)

	// SetDisplayName overwrites the volunteer's name.
	SetDisplayName(ctx context.Context, volunteerID, name string) error

	// ListSlotRegistrations lists a slot's registrations; an empty state means all.
	ListSlotRegistrations(ctx context.Context, slotID string, state domain.RegistrationState) ([]domain.Registration, error)

	// GetPosition retrieves a position by ID, or nil if it does not exist.
	GetPosition(ctx context.Context, positionID string) (*domain.Position, error)

	ListPositionIDs(ctx context.Context) ([]string, error)
}

type CounterRepository interface {
	// IncrementCounter adds delta to the position's checked-in counter and marks
	// the registration as counted, atomically. applied is false when the
	// registration was already counted; newValue is then the current value.
	IncrementCounter(ctx context.Context, positionID, registrationID string, delta int64) (newValue int64, applied bool, err error)

	// ListUncounted returns checked-in registrations of the position whose
	// increment never landed.
	ListUncounted(ctx context.Context, positionID string) ([]domain.Registration, error)

	// RecomputeCounter resets the counter to the number of counted checked-in
	// registrations and reports the values before and after.
	RecomputeCounter(ctx context.Context, positionID string) (previous, current int64, err error)
}
