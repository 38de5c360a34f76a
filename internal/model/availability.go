package model

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilitySlot is a recurring weekly window during which the clinic
// accepts up to MaxSimultaneous concurrent appointments. DayOfWeek is 0-6,
// Sunday = 0. Times are wall-clock HH:MM:SS strings.
type AvailabilitySlot struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	ClinicID        uuid.UUID  `db:"clinic_id" json:"clinic_id"`
	ServiceID       *uuid.UUID `db:"service_id" json:"service_id,omitempty"`
	DayOfWeek       int        `db:"day_of_week" json:"day_of_week"`
	StartTime       string     `db:"start_time" json:"start_time"`
	EndTime         string     `db:"end_time" json:"end_time"`
	MaxSimultaneous int        `db:"max_simultaneous" json:"max_simultaneous"`
	Active          bool       `db:"active" json:"active"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
}

// AvailabilityException is a date-specific override of the weekly pattern:
// either a closure or custom hours for that one date.
type AvailabilityException struct {
	ID          uuid.UUID `db:"id" json:"id"`
	ClinicID    uuid.UUID `db:"clinic_id" json:"clinic_id"`
	Date        time.Time `db:"date" json:"date"`
	IsClosed    bool      `db:"is_closed" json:"is_closed"`
	CustomHours JSONMap   `db:"custom_hours" json:"custom_hours,omitempty"`
	Reason      string    `db:"reason" json:"reason"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type CreateSlotRequest struct {
	ServiceID       *uuid.UUID `json:"service_id"`
	DayOfWeek       int        `json:"day_of_week" binding:"min=0,max=6"`
	StartTime       string     `json:"start_time" binding:"required,timeofday"`
	EndTime         string     `json:"end_time" binding:"required,timeofday"`
	MaxSimultaneous int        `json:"max_simultaneous"`
}

type CreateExceptionRequest struct {
	Date        string  `json:"date" binding:"required,datetime=2006-01-02"`
	IsClosed    bool    `json:"is_closed"`
	CustomHours JSONMap `json:"custom_hours"`
	Reason      string  `json:"reason" binding:"max=500"`
}

// SlotWindow is one open window in an effective daily schedule. SlotID is
// nil when the window comes from a custom-hours exception rather than a
// regular slot.
type SlotWindow struct {
	SlotID          *uuid.UUID `json:"slot_id,omitempty"`
	StartTime       string     `json:"start_time"`
	EndTime         string     `json:"end_time"`
	MaxSimultaneous int        `json:"max_simultaneous"`
}

// DaySchedule is the effective schedule for one date: the weekly slots with
// any exception for that date already applied.
type DaySchedule struct {
	Date    time.Time    `json:"date"`
	Closed  bool         `json:"closed"`
	Reason  string       `json:"reason,omitempty"`
	Windows []SlotWindow `json:"windows"`
}
