package domain

import "time"

// CheckInEvent is emitted once per committed registered -> checked_in transition.
type CheckInEvent struct {
	RegistrationID string    `json:"registration_id"`
	SlotID         string    `json:"slot_id"`
	PositionID     string    `json:"position_id"`
	VolunteerID    string    `json:"volunteer_id"`
	Email          string    `json:"email"`
	CheckedInAt    time.Time `json:"checked_in_at"`
}
