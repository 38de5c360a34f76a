package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/clinicpass/clinic-api/internal/model"
	apperrors "github.com/clinicpass/clinic-api/pkg/errors"
)

const appointmentColumns = `
	id, clinic_id, service_id, user_name, user_email, user_phone,
	appointment_date, appointment_time, status, token, token_validated_at,
	validated_by, payment_status, payment_id, price_paid, notes,
	created_at, updated_at
`

func (r *appointmentRepository) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`

	var apt model.Appointment
	err := r.db.GetContext(ctx, &apt, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("appointment")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return &apt, nil
}

func (r *appointmentRepository) GetByToken(ctx context.Context, token string) (*model.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE token = $1`

	var apt model.Appointment
	err := r.db.GetContext(ctx, &apt, query, token)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("appointment")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment by token: %w", err)
	}
	return &apt, nil
}

func (r *appointmentRepository) ListForDay(ctx context.Context, clinicID uuid.UUID, date time.Time) ([]*model.Appointment, error) {
	query := `SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE clinic_id = $1 AND appointment_date = $2
		ORDER BY appointment_time ASC
	`
	var appointments []*model.Appointment
	err := r.db.SelectContext(ctx, &appointments, query, clinicID, date.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) CountByDay(ctx context.Context, clinicID uuid.UUID, from, to time.Time) ([]*model.DayCount, error) {
	query := `
		SELECT appointment_date AS day, COUNT(*) AS count
		FROM appointments
		WHERE clinic_id = $1
		AND appointment_date >= $2
		AND appointment_date <= $3
		AND status NOT IN ('cancelled')
		GROUP BY appointment_date
		ORDER BY appointment_date ASC
	`
	var counts []*model.DayCount
	err := r.db.SelectContext(ctx, &counts, query, clinicID,
		from.Format("2006-01-02"), to.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to count appointments by day: %w", err)
	}
	return counts, nil
}

func (r *appointmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.AppointmentStatus) error {
	query := `
		UPDATE appointments
		SET status = $1, updated_at = $2
		WHERE id = $3
	`
	result, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update appointment status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("appointment")
	}

	return nil
}

// MarkTokenValidated is the single write of the redemption flow. The
// token_validated_at IS NULL guard makes concurrent validations of the same
// token resolve to exactly one winner.
func (r *appointmentRepository) MarkTokenValidated(ctx context.Context, id, validatedBy uuid.UUID, at time.Time) (bool, error) {
	query := `
		UPDATE appointments
		SET token_validated_at = $1, status = $2, validated_by = $3, updated_at = $1
		WHERE id = $4 AND token_validated_at IS NULL
	`
	result, err := r.db.ExecContext(ctx, query, at, model.AppointmentStatusConfirmed, validatedBy, id)
	if err != nil {
		return false, fmt.Errorf("failed to mark token validated: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows == 1, nil
}
