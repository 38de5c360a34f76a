package token

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/clinicpass/clinic-api/internal/email"
	"github.com/clinicpass/clinic-api/internal/model"
	"github.com/clinicpass/clinic-api/internal/repository"
	apperrors "github.com/clinicpass/clinic-api/pkg/errors"
)

// MaxEarlyValidation is how far ahead of the appointment a token may be
// redeemed. Past appointments are accepted: only too-early redemptions are
// rejected.
const MaxEarlyValidation = 24 * time.Hour

// Service runs the token redemption rule chain. Every failure path leaves the
// appointment untouched; the single write is the conditional update in
// MarkTokenValidated, so concurrent attempts resolve to one winner.
type Service struct {
	appointmentRepo repository.AppointmentRepository
	serviceRepo     repository.ServiceRepository
	emailSvc        email.Service
	now             func() time.Time
	loc             *time.Location
}

func NewService(appointmentRepo repository.AppointmentRepository, serviceRepo repository.ServiceRepository,
	emailSvc email.Service) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		emailSvc:        emailSvc,
		now:             time.Now,
		loc:             time.Local,
	}
}

// WithClock overrides the service clock. Used by tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func failure(kind apperrors.Kind, message string, apt *model.Appointment) *model.ValidationResult {
	return &model.ValidationResult{
		Success:     false,
		Code:        string(kind),
		Message:     message,
		Appointment: apt,
	}
}

// Validate redeems a visit token for the signed-in clinic user. Business-rule
// rejections come back inside the result; only backend failures are returned
// as errors.
func (s *Service) Validate(ctx context.Context, sess *model.Session, rawToken string) (*model.ValidationResult, error) {
	token := strings.TrimSpace(rawToken)
	if token == "" {
		return failure(apperrors.KindInvalidInput, "missing token", nil), nil
	}

	apt, err := s.appointmentRepo.GetByToken(ctx, token)
	if err != nil {
		if apperrors.IsKind(err, apperrors.KindNotFound) {
			return failure(apperrors.KindNotFound, "token not found", nil), nil
		}
		return nil, apperrors.BackendUnavailable(err)
	}

	s.attachService(ctx, apt)

	if apt.TokenValidatedAt != nil {
		return failure(apperrors.KindAlreadyUsed, "token already used", apt), nil
	}

	if apt.Status == model.AppointmentStatusCancelled {
		return failure(apperrors.KindCancelled, "appointment cancelled", apt), nil
	}

	if apt.PaymentStatus != model.PaymentStatusPaid && apt.PaymentStatus != model.PaymentStatusAuthorized {
		return failure(apperrors.KindPaymentNotConfirmed, "payment not confirmed", apt), nil
	}

	start, err := apt.StartTime(s.loc)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if start.Sub(s.now()) > MaxEarlyValidation {
		return failure(apperrors.KindTooEarly, "appointment is more than 24 hours away", apt), nil
	}

	now := s.now()
	won, err := s.appointmentRepo.MarkTokenValidated(ctx, apt.ID, sess.User.ID, now)
	if err != nil {
		return nil, apperrors.BackendUnavailable(err)
	}
	if !won {
		// Another validator redeemed the token between our read and write.
		return failure(apperrors.KindAlreadyUsed, "token already used", apt), nil
	}

	apt.TokenValidatedAt = &now
	apt.ValidatedBy = &sess.User.ID
	apt.Status = model.AppointmentStatusConfirmed
	apt.UpdatedAt = now

	if err := s.emailSvc.SendVisitConfirmation(ctx, apt, sess.Clinic.Name); err != nil {
		log.Warn().Err(err).Str("appointment_id", apt.ID.String()).Msg("visit confirmation email failed")
	}

	return &model.ValidationResult{
		Success:     true,
		Code:        "validated",
		Message:     "token validated",
		Appointment: apt,
	}, nil
}

// attachService hydrates the referenced service for display. Lookup failures
// are ignored: the validation outcome must not depend on them.
func (s *Service) attachService(ctx context.Context, apt *model.Appointment) {
	svc, err := s.serviceRepo.Get(ctx, apt.ServiceID)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			log.Debug().Err(err).Str("service_id", apt.ServiceID.String()).Msg("service lookup failed")
		}
		return
	}
	apt.Service = svc
}
