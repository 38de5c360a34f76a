package appointment

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

type fakeAppointmentRepo struct {
	appointments map[uuid.UUID]*model.Appointment
}

func newFakeAppointmentRepo(apts ...*model.Appointment) *fakeAppointmentRepo {
	r := &fakeAppointmentRepo{appointments: make(map[uuid.UUID]*model.Appointment)}
	for _, apt := range apts {
		r.appointments[apt.ID] = apt
	}
	return r
}

func (r *fakeAppointmentRepo) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	apt, ok := r.appointments[id]
	if !ok {
		return nil, apperrors.NotFound("appointment")
	}
	cp := *apt
	return &cp, nil
}

func (r *fakeAppointmentRepo) GetByToken(ctx context.Context, token string) (*model.Appointment, error) {
	return nil, apperrors.NotFound("appointment")
}

func (r *fakeAppointmentRepo) ListForDay(ctx context.Context, clinicID uuid.UUID, date time.Time) ([]*model.Appointment, error) {
	var out []*model.Appointment
	for _, apt := range r.appointments {
		if apt.ClinicID == clinicID && apt.AppointmentDate.Equal(date) {
			cp := *apt
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) CountByDay(ctx context.Context, clinicID uuid.UUID, from, to time.Time) ([]*model.DayCount, error) {
	counts := make(map[time.Time]int)
	for _, apt := range r.appointments {
		if apt.ClinicID != clinicID || apt.Status == model.AppointmentStatusCancelled {
			continue
		}
		if apt.AppointmentDate.Before(from) || apt.AppointmentDate.After(to) {
			continue
		}
		counts[apt.AppointmentDate]++
	}
	var out []*model.DayCount
	for day, count := range counts {
		out = append(out, &model.DayCount{Date: day, Count: count})
	}
	return out, nil
}

func (r *fakeAppointmentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status model.AppointmentStatus) error {
	apt, ok := r.appointments[id]
	if !ok {
		return apperrors.NotFound("appointment")
	}
	apt.Status = status
	return nil
}

func (r *fakeAppointmentRepo) MarkTokenValidated(ctx context.Context, id, validatedBy uuid.UUID, at time.Time) (bool, error) {
	return false, nil
}

type fakeServiceRepo struct {
	services []*model.Service
}

func (r *fakeServiceRepo) Get(ctx context.Context, id uuid.UUID) (*model.Service, error) {
	for _, svc := range r.services {
		if svc.ID == id {
			return svc, nil
		}
	}
	return nil, apperrors.NotFound("service")
}

func (r *fakeServiceRepo) List(ctx context.Context, clinicID uuid.UUID) ([]*model.Service, error) {
	return r.services, nil
}

func scheduledAppointment(clinicID uuid.UUID, date time.Time) *model.Appointment {
	apt := &model.Appointment{
		ClinicID:        clinicID,
		ServiceID:       uuid.New(),
		UserName:        "João",
		AppointmentDate: date,
		AppointmentTime: "10:00:00",
		Status:          model.AppointmentStatusScheduled,
		PaymentStatus:   model.PaymentStatusPaid,
	}
	apt.ID = uuid.New()
	return apt
}

func TestListForDayHydratesServices(t *testing.T) {
	clinicID := uuid.New()
	date := time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)
	apt := scheduledAppointment(clinicID, date)

	svcModel := &model.Service{ID: apt.ServiceID, ClinicID: clinicID, Name: "Blood panel", Category: model.ServiceCategoryExam}
	svc := NewService(newFakeAppointmentRepo(apt), &fakeServiceRepo{services: []*model.Service{svcModel}})

	got, err := svc.ListForDay(context.Background(), clinicID, date)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.NotNil(t, got[0].Service)
	assert.Equal(t, "Blood panel", got[0].Service.Name)
}

func TestMonthSummaryInvalidRange(t *testing.T) {
	svc := NewService(newFakeAppointmentRepo(), &fakeServiceRepo{})

	from := time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.MonthSummary(context.Background(), uuid.New(), from, to)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidRange))
}

func TestMonthSummaryExcludesCancelled(t *testing.T) {
	clinicID := uuid.New()
	date := time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)

	active := scheduledAppointment(clinicID, date)
	cancelled := scheduledAppointment(clinicID, date)
	cancelled.Status = model.AppointmentStatusCancelled

	svc := NewService(newFakeAppointmentRepo(active, cancelled), &fakeServiceRepo{})

	counts, err := svc.MonthSummary(context.Background(), clinicID,
		time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, counts, 1)
	assert.Equal(t, 1, counts[0].Count)
}

func TestUpdateStatus(t *testing.T) {
	clinicID := uuid.New()
	date := time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		initial  model.AppointmentStatus
		target   model.AppointmentStatus
		wantKind apperrors.Kind
	}{
		{name: "scheduled to completed", initial: model.AppointmentStatusScheduled, target: model.AppointmentStatusCompleted},
		{name: "confirmed to no_show", initial: model.AppointmentStatusConfirmed, target: model.AppointmentStatusNoShow},
		{name: "scheduled to cancelled", initial: model.AppointmentStatusScheduled, target: model.AppointmentStatusCancelled},
		{name: "cancelled is immutable", initial: model.AppointmentStatusCancelled, target: model.AppointmentStatusCompleted, wantKind: apperrors.KindInvalidInput},
		{name: "completed is immutable", initial: model.AppointmentStatusCompleted, target: model.AppointmentStatusCancelled, wantKind: apperrors.KindInvalidInput},
		{name: "cannot revert to scheduled", initial: model.AppointmentStatusConfirmed, target: model.AppointmentStatusScheduled, wantKind: apperrors.KindInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apt := scheduledAppointment(clinicID, date)
			apt.Status = tt.initial
			repo := newFakeAppointmentRepo(apt)
			svc := NewService(repo, &fakeServiceRepo{})

			updated, err := svc.UpdateStatus(context.Background(), clinicID, apt.ID, tt.target)
			if tt.wantKind != "" {
				assert.True(t, apperrors.IsKind(err, tt.wantKind), "got %v", err)
				// The stored appointment is untouched.
				stored, getErr := repo.Get(context.Background(), apt.ID)
				require.NoError(t, getErr)
				assert.Equal(t, tt.initial, stored.Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.target, updated.Status)
		})
	}
}

func TestUpdateStatusWrongClinic(t *testing.T) {
	date := time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)
	apt := scheduledAppointment(uuid.New(), date)
	svc := NewService(newFakeAppointmentRepo(apt), &fakeServiceRepo{})

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), apt.ID, model.AppointmentStatusCompleted)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}
