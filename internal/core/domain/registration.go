package domain

import "time"

type RegistrationState string

const (
	RegistrationStateRegistered RegistrationState = "registered"
	RegistrationStateCheckedIn  RegistrationState = "checked_in"
)

func (s RegistrationState) Valid() bool {
	return s == RegistrationStateRegistered || s == RegistrationStateCheckedIn
}

// Registration links a volunteer to a slot. PositionID, Email and Name are
// read through joins and are not owned by the registration row.
type Registration struct {
	ID          string
	SlotID      string
	PositionID  string
	VolunteerID string
	Email       string
	Name        string
	State       RegistrationState
	CheckInTime *time.Time
}

func (r Registration) CheckedIn() bool {
	return r.State == RegistrationStateCheckedIn
}
