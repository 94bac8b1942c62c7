package service

import (
	"context"
	"fmt"

	"github.com/rl1809/volunteer-checkin/internal/core/domain"
	"github.com/rl1809/volunteer-checkin/internal/port"
)

// RegistrationVerifier resolves a claimed email to its registration on a slot.
type RegistrationVerifier struct {
	registry port.RegistryRepository
}

func NewRegistrationVerifier(registry port.RegistryRepository) *RegistrationVerifier {
	return &RegistrationVerifier{registry: registry}
}

// Verify returns ErrNotRegistered when the email holds no registration on the
// slot and ErrStorageUnavailable when the registry could not answer.
func (v *RegistrationVerifier) Verify(ctx context.Context, slotID, email string) (domain.Registration, error) {
	email = domain.NormalizeEmail(email)
	if slotID == "" || email == "" {
		return domain.Registration{}, ErrNotRegistered
	}

	reg, err := v.registry.FindRegistration(ctx, slotID, email)
	if err != nil {
		return domain.Registration{}, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	if reg == nil {
		return domain.Registration{}, ErrNotRegistered
	}

	return *reg, nil
}
