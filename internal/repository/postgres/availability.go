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

func (r *availabilityRepository) ListSlots(ctx context.Context, clinicID uuid.UUID) ([]*model.AvailabilitySlot, error) {
	query := `
		SELECT id, clinic_id, service_id, day_of_week, start_time, end_time,
			   max_simultaneous, active, created_at
		FROM availability_slots
		WHERE clinic_id = $1
		ORDER BY day_of_week ASC, start_time ASC
	`
	var slots []*model.AvailabilitySlot
	err := r.db.SelectContext(ctx, &slots, query, clinicID)
	if err != nil {
		return nil, fmt.Errorf("failed to list availability slots: %w", err)
	}
	return slots, nil
}

func (r *availabilityRepository) CreateSlot(ctx context.Context, slot *model.AvailabilitySlot) error {
	query := `
		INSERT INTO availability_slots (
			id, clinic_id, service_id, day_of_week, start_time, end_time,
			max_simultaneous, active, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	slot.ID = uuid.New()
	slot.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		slot.ID,
		slot.ClinicID,
		slot.ServiceID,
		slot.DayOfWeek,
		slot.StartTime,
		slot.EndTime,
		slot.MaxSimultaneous,
		slot.Active,
		slot.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create availability slot: %w", err)
	}
	return nil
}

func (r *availabilityRepository) ToggleSlot(ctx context.Context, clinicID, id uuid.UUID) (*model.AvailabilitySlot, error) {
	query := `
		UPDATE availability_slots
		SET active = NOT active
		WHERE id = $1 AND clinic_id = $2
		RETURNING id, clinic_id, service_id, day_of_week, start_time, end_time,
				  max_simultaneous, active, created_at
	`
	var slot model.AvailabilitySlot
	err := r.db.GetContext(ctx, &slot, query, id, clinicID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("availability slot")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to toggle availability slot: %w", err)
	}
	return &slot, nil
}

func (r *availabilityRepository) ListExceptions(ctx context.Context, clinicID uuid.UUID, from time.Time) ([]*model.AvailabilityException, error) {
	query := `
		SELECT id, clinic_id, date, is_closed, custom_hours, reason, created_at
		FROM availability_exceptions
		WHERE clinic_id = $1 AND date >= $2
		ORDER BY date ASC
	`
	var exceptions []*model.AvailabilityException
	err := r.db.SelectContext(ctx, &exceptions, query, clinicID, from.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to list availability exceptions: %w", err)
	}
	return exceptions, nil
}

func (r *availabilityRepository) GetExceptionForDate(ctx context.Context, clinicID uuid.UUID, date time.Time) (*model.AvailabilityException, error) {
	query := `
		SELECT id, clinic_id, date, is_closed, custom_hours, reason, created_at
		FROM availability_exceptions
		WHERE clinic_id = $1 AND date = $2
	`
	var exc model.AvailabilityException
	err := r.db.GetContext(ctx, &exc, query, clinicID, date.Format("2006-01-02"))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get availability exception: %w", err)
	}
	return &exc, nil
}

func (r *availabilityRepository) CreateException(ctx context.Context, exc *model.AvailabilityException) error {
	query := `
		INSERT INTO availability_exceptions (
			id, clinic_id, date, is_closed, custom_hours, reason, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	exc.ID = uuid.New()
	exc.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		exc.ID,
		exc.ClinicID,
		exc.Date.Format("2006-01-02"),
		exc.IsClosed,
		exc.CustomHours,
		exc.Reason,
		exc.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create availability exception: %w", err)
	}
	return nil
}

func (r *availabilityRepository) DeleteException(ctx context.Context, clinicID, id uuid.UUID) error {
	query := `
		DELETE FROM availability_exceptions
		WHERE id = $1 AND clinic_id = $2
	`
	result, err := r.db.ExecContext(ctx, query, id, clinicID)
	if err != nil {
		return fmt.Errorf("failed to delete availability exception: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("availability exception")
	}

	return nil
}
