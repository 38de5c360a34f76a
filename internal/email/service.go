package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/clinicpass/clinic-api/internal/model"
	"github.com/clinicpass/clinic-api/pkg/circuitbreaker"
)

// Service sends transactional mail to patients. Delivery is best effort:
// callers log failures and move on.
type Service interface {
	SendVisitConfirmation(ctx context.Context, apt *model.Appointment, clinicName string) error
}

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type service struct {
	dialer  *gomail.Dialer
	from    string
	breaker *circuitbreaker.CircuitBreaker
}

func NewService(cfg Config) Service {
	return &service{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		// A dead SMTP relay should not add a dial timeout to every token
		// validation.
		breaker: circuitbreaker.New(circuitbreaker.DefaultSettings()),
	}
}

func (s *service) SendVisitConfirmation(ctx context.Context, apt *model.Appointment, clinicName string) error {
	if apt.UserEmail == "" {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", apt.UserEmail)
	m.SetHeader("Subject", fmt.Sprintf("Visit confirmed at %s", clinicName))
	m.SetBody("text/plain", fmt.Sprintf(
		"Hello %s,\n\nYour visit at %s on %s at %s has been confirmed.\n",
		apt.UserName,
		clinicName,
		apt.AppointmentDate.Format("2006-01-02"),
		apt.AppointmentTime,
	))

	err := s.breaker.Execute(func() error {
		return s.dialer.DialAndSend(m)
	})
	if err != nil {
		return fmt.Errorf("failed to send visit confirmation: %w", err)
	}
	return nil
}

// NoopService discards all mail. Used when SMTP is not configured.
type NoopService struct{}

func (NoopService) SendVisitConfirmation(ctx context.Context, apt *model.Appointment, clinicName string) error {
	return nil
}
