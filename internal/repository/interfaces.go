package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/clinicpass/clinic-api/internal/model"
)

// All repository interfaces in one file
type (
	// ClinicRepository handles clinic and clinic-user lookups
	ClinicRepository interface {
		Get(ctx context.Context, id uuid.UUID) (*model.Clinic, error)
		Update(ctx context.Context, clinic *model.Clinic) error
		GetUserByEmail(ctx context.Context, email string) (*model.ClinicUser, error)
	}

	ServiceRepository interface {
		Get(ctx context.Context, id uuid.UUID) (*model.Service, error)
		List(ctx context.Context, clinicID uuid.UUID) ([]*model.Service, error)
	}

	AppointmentRepository interface {
		Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error)
		GetByToken(ctx context.Context, token string) (*model.Appointment, error)
		ListForDay(ctx context.Context, clinicID uuid.UUID, date time.Time) ([]*model.Appointment, error)
		CountByDay(ctx context.Context, clinicID uuid.UUID, from, to time.Time) ([]*model.DayCount, error)
		UpdateStatus(ctx context.Context, id uuid.UUID, status model.AppointmentStatus) error
		// MarkTokenValidated performs the conditional redemption write: it
		// sets token_validated_at and flips status to confirmed only if the
		// token has not been validated yet. Returns false when another
		// validation won the race.
		MarkTokenValidated(ctx context.Context, id, validatedBy uuid.UUID, at time.Time) (bool, error)
	}

	AvailabilityRepository interface {
		ListSlots(ctx context.Context, clinicID uuid.UUID) ([]*model.AvailabilitySlot, error)
		CreateSlot(ctx context.Context, slot *model.AvailabilitySlot) error
		ToggleSlot(ctx context.Context, clinicID, id uuid.UUID) (*model.AvailabilitySlot, error)
		ListExceptions(ctx context.Context, clinicID uuid.UUID, from time.Time) ([]*model.AvailabilityException, error)
		GetExceptionForDate(ctx context.Context, clinicID uuid.UUID, date time.Time) (*model.AvailabilityException, error)
		CreateException(ctx context.Context, exc *model.AvailabilityException) error
		DeleteException(ctx context.Context, clinicID, id uuid.UUID) error
	}

	AdRepository interface {
		Get(ctx context.Context, clinicID, id uuid.UUID) (*model.ClinicAd, error)
		List(ctx context.Context, clinicID uuid.UUID) ([]*model.ClinicAd, error)
		Create(ctx context.Context, ad *model.ClinicAd) error
		Update(ctx context.Context, ad *model.ClinicAd) error
		ToggleActive(ctx context.Context, clinicID, id uuid.UUID) (*model.ClinicAd, error)
		Delete(ctx context.Context, clinicID, id uuid.UUID) error
	}

	FinanceRepository interface {
		// GetBalance returns (nil, nil) when no balance row exists yet.
		GetBalance(ctx context.Context, clinicID uuid.UUID) (*model.ClinicBalance, error)
		ListTransactions(ctx context.Context, clinicID uuid.UUID, since *time.Time) ([]*model.FinancialTransaction, error)
	}

	// SessionStore persists the session hint (the last signed-in email) in an
	// external key-value store.
	SessionStore interface {
		Put(ctx context.Context, sessionID uuid.UUID, email string, ttl time.Duration) error
		Get(ctx context.Context, sessionID uuid.UUID) (string, error)
		Delete(ctx context.Context, sessionID uuid.UUID) error
	}
)
