package domain

import "time"

type Position struct {
	ID                  string
	EventID             string
	Name                string
	StartTime           time.Time
	EndTime             time.Time
	Capacity            int
	VolunteersCheckedIn int64 // derived, see AggregateMaintainer
}

type Slot struct {
	ID         string
	PositionID string
	StartTime  time.Time
	EndTime    time.Time
	Capacity   int
}
