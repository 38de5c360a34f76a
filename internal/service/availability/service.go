package availability

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/clinicpass/clinic-api/internal/model"
	"github.com/clinicpass/clinic-api/internal/repository"
	apperrors "github.com/clinicpass/clinic-api/pkg/errors"
)

type Service struct {
	repo repository.AvailabilityRepository
}

func NewService(repo repository.AvailabilityRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListSlots(ctx context.Context, clinicID uuid.UUID) ([]*model.AvailabilitySlot, error) {
	return s.repo.ListSlots(ctx, clinicID)
}

// AddSlot creates a weekly slot. Rejects inverted time ranges and
// non-positive capacity before anything reaches storage.
func (s *Service) AddSlot(ctx context.Context, clinicID uuid.UUID, req *model.CreateSlotRequest) (*model.AvailabilitySlot, error) {
	if req.DayOfWeek < 0 || req.DayOfWeek > 6 {
		return nil, apperrors.InvalidInput("day_of_week must be between 0 and 6")
	}

	start, err := model.ParseTimeOfDay(req.StartTime)
	if err != nil {
		return nil, apperrors.InvalidInput("invalid start time")
	}
	end, err := model.ParseTimeOfDay(req.EndTime)
	if err != nil {
		return nil, apperrors.InvalidInput("invalid end time")
	}

	if !end.After(start) {
		return nil, apperrors.New(apperrors.KindInvalidRange, "end time must be after start time")
	}
	if req.MaxSimultaneous < 1 {
		return nil, apperrors.New(apperrors.KindInvalidCapacity, "max_simultaneous must be at least 1")
	}

	slot := &model.AvailabilitySlot{
		ClinicID:        clinicID,
		ServiceID:       req.ServiceID,
		DayOfWeek:       req.DayOfWeek,
		StartTime:       start.Format("15:04:05"),
		EndTime:         end.Format("15:04:05"),
		MaxSimultaneous: req.MaxSimultaneous,
		Active:          true,
	}

	if err := s.repo.CreateSlot(ctx, slot); err != nil {
		return nil, err
	}
	return slot, nil
}

// ToggleSlot flips the active flag. Each call is a real mutation: two calls
// restore the original state. Slots belonging to another clinic are not
// visible, so the lookup fails as NotFound.
func (s *Service) ToggleSlot(ctx context.Context, clinicID, id uuid.UUID) (*model.AvailabilitySlot, error) {
	return s.repo.ToggleSlot(ctx, clinicID, id)
}

func (s *Service) ListExceptions(ctx context.Context, clinicID uuid.UUID, from time.Time) ([]*model.AvailabilityException, error) {
	return s.repo.ListExceptions(ctx, clinicID, from)
}

func (s *Service) AddException(ctx context.Context, clinicID uuid.UUID, req *model.CreateExceptionRequest) (*model.AvailabilityException, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, apperrors.InvalidInput("invalid date")
	}

	if !req.IsClosed {
		if _, _, err := customHoursWindow(req.CustomHours); err != nil {
			return nil, err
		}
	}

	// One exception per date; storage enforces the same with a unique index.
	existing, err := s.repo.GetExceptionForDate(ctx, clinicID, date)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.InvalidInput("an exception already exists for this date")
	}

	exc := &model.AvailabilityException{
		ClinicID:    clinicID,
		Date:        date,
		IsClosed:    req.IsClosed,
		CustomHours: req.CustomHours,
		Reason:      req.Reason,
	}

	if err := s.repo.CreateException(ctx, exc); err != nil {
		return nil, err
	}
	return exc, nil
}

func (s *Service) RemoveException(ctx context.Context, clinicID, id uuid.UUID) error {
	return s.repo.DeleteException(ctx, clinicID, id)
}

// EffectiveSchedule joins the weekly slots with any exception for the date at
// read time. A closure removes every window; custom hours replace the regular
// windows with the override; otherwise the active slots for that weekday
// apply as stored.
func (s *Service) EffectiveSchedule(ctx context.Context, clinicID uuid.UUID, date time.Time) (*model.DaySchedule, error) {
	exc, err := s.repo.GetExceptionForDate(ctx, clinicID, date)
	if err != nil {
		return nil, err
	}

	schedule := &model.DaySchedule{Date: date}

	if exc != nil && exc.IsClosed {
		schedule.Closed = true
		schedule.Reason = exc.Reason
		return schedule, nil
	}

	slots, err := s.repo.ListSlots(ctx, clinicID)
	if err != nil {
		return nil, err
	}

	weekday := int(date.Weekday())
	maxCap := 0
	for _, slot := range slots {
		if !slot.Active || slot.DayOfWeek != weekday {
			continue
		}
		if slot.MaxSimultaneous > maxCap {
			maxCap = slot.MaxSimultaneous
		}
		slotID := slot.ID
		schedule.Windows = append(schedule.Windows, model.SlotWindow{
			SlotID:          &slotID,
			StartTime:       slot.StartTime,
			EndTime:         slot.EndTime,
			MaxSimultaneous: slot.MaxSimultaneous,
		})
	}

	if exc != nil && len(exc.CustomHours) > 0 {
		start, end, err := customHoursWindow(exc.CustomHours)
		if err != nil {
			return nil, err
		}
		if maxCap == 0 {
			maxCap = 1
		}
		schedule.Reason = exc.Reason
		schedule.Windows = []model.SlotWindow{{
			StartTime:       start,
			EndTime:         end,
			MaxSimultaneous: maxCap,
		}}
	}

	return schedule, nil
}

func customHoursWindow(hours model.JSONMap) (string, string, error) {
	if len(hours) == 0 {
		return "", "", nil
	}

	rawStart, _ := hours["start_time"].(string)
	rawEnd, _ := hours["end_time"].(string)

	start, err := model.ParseTimeOfDay(rawStart)
	if err != nil {
		return "", "", apperrors.InvalidInput("invalid custom hours start time")
	}
	end, err := model.ParseTimeOfDay(rawEnd)
	if err != nil {
		return "", "", apperrors.InvalidInput("invalid custom hours end time")
	}
	if !end.After(start) {
		return "", "", apperrors.New(apperrors.KindInvalidRange, "custom hours end time must be after start time")
	}

	return start.Format("15:04:05"), end.Format("15:04:05"), nil
}
