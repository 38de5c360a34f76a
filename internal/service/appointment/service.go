package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/clinicpass/clinic-api/internal/model"
	"github.com/clinicpass/clinic-api/internal/repository"
	apperrors "github.com/clinicpass/clinic-api/pkg/errors"
)

// Service backs the calendar view. Appointments are created by the
// patient-facing booking flow; the clinic only reads them and transitions
// their status.
type Service struct {
	repo        repository.AppointmentRepository
	serviceRepo repository.ServiceRepository
}

func NewService(repo repository.AppointmentRepository, serviceRepo repository.ServiceRepository) *Service {
	return &Service{repo: repo, serviceRepo: serviceRepo}
}

// ListForDay returns the day's appointments ordered by time, with the
// referenced service hydrated for display.
func (s *Service) ListForDay(ctx context.Context, clinicID uuid.UUID, date time.Time) ([]*model.Appointment, error) {
	appointments, err := s.repo.ListForDay(ctx, clinicID, date)
	if err != nil {
		return nil, err
	}

	services, err := s.serviceRepo.List(ctx, clinicID)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*model.Service, len(services))
	for _, svc := range services {
		byID[svc.ID] = svc
	}
	for _, apt := range appointments {
		apt.Service = byID[apt.ServiceID]
	}

	return appointments, nil
}

// MonthSummary returns per-day appointment counts for calendar markers.
func (s *Service) MonthSummary(ctx context.Context, clinicID uuid.UUID, from, to time.Time) ([]*model.DayCount, error) {
	if to.Before(from) {
		return nil, apperrors.New(apperrors.KindInvalidRange, "to must not be before from")
	}
	return s.repo.CountByDay(ctx, clinicID, from, to)
}

// UpdateStatus transitions an appointment. Cancelled and completed
// appointments are immutable.
func (s *Service) UpdateStatus(ctx context.Context, clinicID, id uuid.UUID, status model.AppointmentStatus) (*model.Appointment, error) {
	apt, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if apt.ClinicID != clinicID {
		return nil, apperrors.NotFound("appointment")
	}

	if apt.Terminal() {
		return nil, apperrors.InvalidInput(fmt.Sprintf("appointment is already %s", apt.Status))
	}

	switch status {
	case model.AppointmentStatusCompleted, model.AppointmentStatusNoShow, model.AppointmentStatusCancelled:
	default:
		return nil, apperrors.InvalidInput(fmt.Sprintf("unsupported status transition to %s", status))
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	apt.Status = status
	apt.UpdatedAt = time.Now()
	return apt, nil
}
