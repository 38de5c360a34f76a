package availability

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicpass/clinic-api/internal/model"
	apperrors "github.com/clinicpass/clinic-api/pkg/errors"
)

type fakeAvailabilityRepo struct {
	slots      []*model.AvailabilitySlot
	exceptions []*model.AvailabilityException
}

func (r *fakeAvailabilityRepo) ListSlots(ctx context.Context, clinicID uuid.UUID) ([]*model.AvailabilitySlot, error) {
	var out []*model.AvailabilitySlot
	for _, slot := range r.slots {
		if slot.ClinicID == clinicID {
			out = append(out, slot)
		}
	}
	return out, nil
}

func (r *fakeAvailabilityRepo) CreateSlot(ctx context.Context, slot *model.AvailabilitySlot) error {
	slot.ID = uuid.New()
	slot.CreatedAt = time.Now()
	r.slots = append(r.slots, slot)
	return nil
}

func (r *fakeAvailabilityRepo) ToggleSlot(ctx context.Context, clinicID, id uuid.UUID) (*model.AvailabilitySlot, error) {
	for _, slot := range r.slots {
		if slot.ID == id && slot.ClinicID == clinicID {
			slot.Active = !slot.Active
			return slot, nil
		}
	}
	return nil, apperrors.NotFound("availability slot")
}

func (r *fakeAvailabilityRepo) ListExceptions(ctx context.Context, clinicID uuid.UUID, from time.Time) ([]*model.AvailabilityException, error) {
	var out []*model.AvailabilityException
	for _, exc := range r.exceptions {
		if exc.ClinicID == clinicID && !exc.Date.Before(from) {
			out = append(out, exc)
		}
	}
	return out, nil
}

func (r *fakeAvailabilityRepo) GetExceptionForDate(ctx context.Context, clinicID uuid.UUID, date time.Time) (*model.AvailabilityException, error) {
	for _, exc := range r.exceptions {
		if exc.ClinicID == clinicID && exc.Date.Equal(date) {
			return exc, nil
		}
	}
	return nil, nil
}

func (r *fakeAvailabilityRepo) CreateException(ctx context.Context, exc *model.AvailabilityException) error {
	exc.ID = uuid.New()
	exc.CreatedAt = time.Now()
	r.exceptions = append(r.exceptions, exc)
	return nil
}

func (r *fakeAvailabilityRepo) DeleteException(ctx context.Context, clinicID, id uuid.UUID) error {
	for i, exc := range r.exceptions {
		if exc.ClinicID == clinicID && exc.ID == id {
			r.exceptions = append(r.exceptions[:i], r.exceptions[i+1:]...)
			return nil
		}
	}
	return apperrors.NotFound("availability exception")
}

func TestAddSlot(t *testing.T) {
	clinicID := uuid.New()
	repo := &fakeAvailabilityRepo{}
	svc := NewService(repo)

	slot, err := svc.AddSlot(context.Background(), clinicID, &model.CreateSlotRequest{
		DayOfWeek:       1,
		StartTime:       "08:00",
		EndTime:         "12:00",
		MaxSimultaneous: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, "08:00:00", slot.StartTime)
	assert.Equal(t, "12:00:00", slot.EndTime)
	assert.True(t, slot.Active)
	assert.NotEqual(t, uuid.Nil, slot.ID)

	listed, err := svc.ListSlots(context.Background(), clinicID)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestAddSlotRejections(t *testing.T) {
	tests := []struct {
		name     string
		req      model.CreateSlotRequest
		wantKind apperrors.Kind
	}{
		{
			name:     "day out of range",
			req:      model.CreateSlotRequest{DayOfWeek: 7, StartTime: "08:00", EndTime: "12:00", MaxSimultaneous: 1},
			wantKind: apperrors.KindInvalidInput,
		},
		{
			name:     "unparseable start time",
			req:      model.CreateSlotRequest{DayOfWeek: 1, StartTime: "morning", EndTime: "12:00", MaxSimultaneous: 1},
			wantKind: apperrors.KindInvalidInput,
		},
		{
			name:     "end before start",
			req:      model.CreateSlotRequest{DayOfWeek: 1, StartTime: "12:00", EndTime: "08:00", MaxSimultaneous: 1},
			wantKind: apperrors.KindInvalidRange,
		},
		{
			name:     "end equals start",
			req:      model.CreateSlotRequest{DayOfWeek: 1, StartTime: "08:00", EndTime: "08:00", MaxSimultaneous: 1},
			wantKind: apperrors.KindInvalidRange,
		},
		{
			name:     "zero capacity",
			req:      model.CreateSlotRequest{DayOfWeek: 1, StartTime: "08:00", EndTime: "12:00", MaxSimultaneous: 0},
			wantKind: apperrors.KindInvalidCapacity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clinicID := uuid.New()
			repo := &fakeAvailabilityRepo{}
			svc := NewService(repo)

			_, err := svc.AddSlot(context.Background(), clinicID, &tt.req)
			require.Error(t, err)
			assert.True(t, apperrors.IsKind(err, tt.wantKind), "got kind %s", apperrors.KindOf(err))

			// Rejected slots never reach storage.
			listed, err := svc.ListSlots(context.Background(), clinicID)
			require.NoError(t, err)
			assert.Empty(t, listed)
		})
	}
}

func TestToggleSlotTwiceRestoresState(t *testing.T) {
	clinicID := uuid.New()
	repo := &fakeAvailabilityRepo{}
	svc := NewService(repo)

	slot, err := svc.AddSlot(context.Background(), clinicID, &model.CreateSlotRequest{
		DayOfWeek: 2, StartTime: "09:00", EndTime: "17:00", MaxSimultaneous: 2,
	})
	require.NoError(t, err)

	toggled, err := svc.ToggleSlot(context.Background(), clinicID, slot.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Active)

	toggled, err = svc.ToggleSlot(context.Background(), clinicID, slot.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Active)
}

func TestToggleSlotWrongClinic(t *testing.T) {
	clinicID := uuid.New()
	repo := &fakeAvailabilityRepo{}
	svc := NewService(repo)

	slot, err := svc.AddSlot(context.Background(), clinicID, &model.CreateSlotRequest{
		DayOfWeek: 2, StartTime: "09:00", EndTime: "17:00", MaxSimultaneous: 2,
	})
	require.NoError(t, err)

	_, err = svc.ToggleSlot(context.Background(), uuid.New(), slot.ID)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))

	// The slot is untouched.
	listed, err := svc.ListSlots(context.Background(), clinicID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.True(t, listed[0].Active)
}

func TestAddExceptionValidation(t *testing.T) {
	clinicID := uuid.New()
	svc := NewService(&fakeAvailabilityRepo{})

	_, err := svc.AddException(context.Background(), clinicID, &model.CreateExceptionRequest{
		Date: "not-a-date", IsClosed: true,
	})
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidInput))

	_, err = svc.AddException(context.Background(), clinicID, &model.CreateExceptionRequest{
		Date:        "2026-04-21",
		CustomHours: model.JSONMap{"start_time": "14:00", "end_time": "09:00"},
	})
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidRange))

	exc, err := svc.AddException(context.Background(), clinicID, &model.CreateExceptionRequest{
		Date: "2026-04-21", IsClosed: true, Reason: "public holiday",
	})
	require.NoError(t, err)
	assert.True(t, exc.IsClosed)
	assert.Equal(t, "public holiday", exc.Reason)
}

func TestAddExceptionDuplicateDate(t *testing.T) {
	clinicID := uuid.New()
	repo := &fakeAvailabilityRepo{}
	svc := NewService(repo)

	exc, err := svc.AddException(context.Background(), clinicID, &model.CreateExceptionRequest{
		Date: "2026-04-21", IsClosed: true,
	})
	require.NoError(t, err)

	_, err = svc.AddException(context.Background(), clinicID, &model.CreateExceptionRequest{
		Date:        "2026-04-21",
		CustomHours: model.JSONMap{"start_time": "10:00", "end_time": "13:00"},
	})
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidInput))

	// Another clinic is free to register the same date.
	_, err = svc.AddException(context.Background(), uuid.New(), &model.CreateExceptionRequest{
		Date: "2026-04-21", IsClosed: true,
	})
	assert.NoError(t, err)

	// Deleting the original frees the date again.
	require.NoError(t, svc.RemoveException(context.Background(), clinicID, exc.ID))
	_, err = svc.AddException(context.Background(), clinicID, &model.CreateExceptionRequest{
		Date: "2026-04-21", IsClosed: true,
	})
	assert.NoError(t, err)
}

func TestEffectiveScheduleClosed(t *testing.T) {
	clinicID := uuid.New()
	date := time.Date(2026, 4, 21, 0, 0, 0, 0, time.UTC) // Tuesday
	repo := &fakeAvailabilityRepo{
		slots: []*model.AvailabilitySlot{
			{ID: uuid.New(), ClinicID: clinicID, DayOfWeek: 2, StartTime: "08:00:00", EndTime: "12:00:00", MaxSimultaneous: 2, Active: true},
		},
		exceptions: []*model.AvailabilityException{
			{ID: uuid.New(), ClinicID: clinicID, Date: date, IsClosed: true, Reason: "holiday"},
		},
	}
	svc := NewService(repo)

	schedule, err := svc.EffectiveSchedule(context.Background(), clinicID, date)
	require.NoError(t, err)

	assert.True(t, schedule.Closed)
	assert.Equal(t, "holiday", schedule.Reason)
	assert.Empty(t, schedule.Windows)
}

func TestEffectiveScheduleCustomHours(t *testing.T) {
	clinicID := uuid.New()
	date := time.Date(2026, 4, 21, 0, 0, 0, 0, time.UTC)
	repo := &fakeAvailabilityRepo{
		slots: []*model.AvailabilitySlot{
			{ID: uuid.New(), ClinicID: clinicID, DayOfWeek: 2, StartTime: "08:00:00", EndTime: "12:00:00", MaxSimultaneous: 2, Active: true},
			{ID: uuid.New(), ClinicID: clinicID, DayOfWeek: 2, StartTime: "14:00:00", EndTime: "18:00:00", MaxSimultaneous: 4, Active: true},
		},
		exceptions: []*model.AvailabilityException{
			{ID: uuid.New(), ClinicID: clinicID, Date: date, CustomHours: model.JSONMap{"start_time": "10:00", "end_time": "13:00"}, Reason: "short day"},
		},
	}
	svc := NewService(repo)

	schedule, err := svc.EffectiveSchedule(context.Background(), clinicID, date)
	require.NoError(t, err)

	assert.False(t, schedule.Closed)
	assert.Equal(t, "short day", schedule.Reason)
	require.Len(t, schedule.Windows, 1)
	assert.Nil(t, schedule.Windows[0].SlotID)
	assert.Equal(t, "10:00:00", schedule.Windows[0].StartTime)
	assert.Equal(t, "13:00:00", schedule.Windows[0].EndTime)
	assert.Equal(t, 4, schedule.Windows[0].MaxSimultaneous)
}

func TestEffectiveScheduleRegularDay(t *testing.T) {
	clinicID := uuid.New()
	date := time.Date(2026, 4, 21, 0, 0, 0, 0, time.UTC)
	repo := &fakeAvailabilityRepo{
		slots: []*model.AvailabilitySlot{
			{ID: uuid.New(), ClinicID: clinicID, DayOfWeek: 2, StartTime: "08:00:00", EndTime: "12:00:00", MaxSimultaneous: 2, Active: true},
			{ID: uuid.New(), ClinicID: clinicID, DayOfWeek: 2, StartTime: "14:00:00", EndTime: "18:00:00", MaxSimultaneous: 1, Active: false},
			{ID: uuid.New(), ClinicID: clinicID, DayOfWeek: 3, StartTime: "08:00:00", EndTime: "12:00:00", MaxSimultaneous: 1, Active: true},
		},
	}
	svc := NewService(repo)

	schedule, err := svc.EffectiveSchedule(context.Background(), clinicID, date)
	require.NoError(t, err)

	assert.False(t, schedule.Closed)
	require.Len(t, schedule.Windows, 1)
	require.NotNil(t, schedule.Windows[0].SlotID)
	assert.Equal(t, "08:00:00", schedule.Windows[0].StartTime)
	assert.Equal(t, 2, schedule.Windows[0].MaxSimultaneous)
}

func TestRemoveException(t *testing.T) {
	clinicID := uuid.New()
	repo := &fakeAvailabilityRepo{}
	svc := NewService(repo)

	exc, err := svc.AddException(context.Background(), clinicID, &model.CreateExceptionRequest{
		Date: "2026-05-01", IsClosed: true,
	})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveException(context.Background(), clinicID, exc.ID))

	listed, err := svc.ListExceptions(context.Background(), clinicID, time.Time{})
	require.NoError(t, err)
	assert.Empty(t, listed)
}
