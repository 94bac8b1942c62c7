package storage

import (
	"context"
	"fmt"

	"github.com/rl1809/volunteer-checkin/internal/core/domain"
)

// The Create* methods stand in for the registration workflow that owns these
// records; the check-in engine never calls them.

func (m *SQLAdapter) CreatePosition(ctx context.Context, p domain.Position) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO positions (id, event_id, name, start_time, end_time, capacity, volunteers_checked_in)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.EventID, p.Name, p.StartTime.UTC(), p.EndTime.UTC(), p.Capacity, p.VolunteersCheckedIn,
	)
	if err != nil {
		return fmt.Errorf("insert position: %w", err)
	}
	return nil
}

func (m *SQLAdapter) CreateSlot(ctx context.Context, s domain.Slot) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO slots (id, position_id, start_time, end_time, capacity)
		VALUES (?, ?, ?, ?, ?)`,
		s.ID, s.PositionID, s.StartTime.UTC(), s.EndTime.UTC(), s.Capacity,
	)
	if err != nil {
		return fmt.Errorf("insert slot: %w", err)
	}
	return nil
}

func (m *SQLAdapter) CreateVolunteer(ctx context.Context, v domain.Volunteer) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO volunteers (id, email, name) VALUES (?, ?, ?)`,
		v.ID, domain.NormalizeEmail(v.Email), v.Name,
	)
	if err != nil {
		return fmt.Errorf("insert volunteer: %w", err)
	}
	return nil
}

// CreateRegistration inserts a registration in the registered state.
func (m *SQLAdapter) CreateRegistration(ctx context.Context, id, slotID, volunteerID string) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO registrations (id, slot_id, volunteer_id, state, counted)
		VALUES (?, ?, ?, ?, 0)`,
		id, slotID, volunteerID, string(domain.RegistrationStateRegistered),
	)
	if err != nil {
		return fmt.Errorf("insert registration: %w", err)
	}
	return nil
}
