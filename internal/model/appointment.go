package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusNoShow    AppointmentStatus = "no_show"
)

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusAuthorized PaymentStatus = "authorized"
	PaymentStatusPaid       PaymentStatus = "paid"
	PaymentStatusRefunded   PaymentStatus = "refunded"
)

// Appointment is the central mutable entity: created by the patient-facing
// booking flow, transitioned by the clinic through status and token fields.
// Immutable once cancelled or completed.
type Appointment struct {
	Base
	ClinicID         uuid.UUID         `db:"clinic_id" json:"clinic_id"`
	ServiceID        uuid.UUID         `db:"service_id" json:"service_id"`
	UserName         string            `db:"user_name" json:"user_name"`
	UserEmail        string            `db:"user_email" json:"user_email"`
	UserPhone        string            `db:"user_phone" json:"user_phone"`
	AppointmentDate  time.Time         `db:"appointment_date" json:"appointment_date"`
	AppointmentTime  string            `db:"appointment_time" json:"appointment_time"`
	Status           AppointmentStatus `db:"status" json:"status"`
	Token            *string           `db:"token" json:"token,omitempty"`
	TokenValidatedAt *time.Time        `db:"token_validated_at" json:"token_validated_at,omitempty"`
	ValidatedBy      *uuid.UUID        `db:"validated_by" json:"validated_by,omitempty"`
	PaymentStatus    PaymentStatus     `db:"payment_status" json:"payment_status"`
	PaymentID        *string           `db:"payment_id" json:"payment_id,omitempty"`
	PricePaid        int64             `db:"price_paid" json:"price_paid"`
	Notes            string            `db:"notes" json:"notes"`
	Service          *Service          `db:"-" json:"service,omitempty"`
}

// StartTime combines the appointment date and wall-clock time in loc.
func (a *Appointment) StartTime(loc *time.Location) (time.Time, error) {
	t, err := ParseTimeOfDay(a.AppointmentTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid appointment time %q: %w", a.AppointmentTime, err)
	}
	d := a.AppointmentDate
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc), nil
}

// Terminal reports whether the appointment can no longer be transitioned.
func (a *Appointment) Terminal() bool {
	return a.Status == AppointmentStatusCancelled || a.Status == AppointmentStatusCompleted
}

// ParseTimeOfDay parses a wall-clock time in HH:MM or HH:MM:SS form.
func ParseTimeOfDay(s string) (time.Time, error) {
	if t, err := time.Parse("15:04:05", s); err == nil {
		return t, nil
	}
	return time.Parse("15:04", s)
}

type ValidateTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// ValidationResult is the outcome of a token validation attempt. Business
// rejections are carried here, not as transport errors: the appointment is
// included whenever the lookup found one, so the caller can render it.
type ValidationResult struct {
	Success     bool         `json:"success"`
	Code        string       `json:"code"`
	Message     string       `json:"message"`
	Appointment *Appointment `json:"appointment,omitempty"`
}

type UpdateAppointmentStatusRequest struct {
	Status AppointmentStatus `json:"status" binding:"required,oneof=completed no_show cancelled"`
}

// DayCount is one calendar cell's appointment count
type DayCount struct {
	Date  time.Time `db:"day" json:"date"`
	Count int       `db:"count" json:"count"`
}
