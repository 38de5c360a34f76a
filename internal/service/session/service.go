package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/clinicpass/clinic-api/internal/model"
	"github.com/clinicpass/clinic-api/internal/repository"
	"github.com/clinicpass/clinic-api/pkg/auth"
	apperrors "github.com/clinicpass/clinic-api/pkg/errors"
)

// Service resolves clinic-user identities by email. There is no credential
// check: this is the demo-grade lookup the portal uses, not a security
// boundary. The issued token only transports the session hint.
type Service struct {
	clinicRepo repository.ClinicRepository
	store      repository.SessionStore
	tokens     auth.SessionTokenService
	ttl        time.Duration
}

func NewService(clinicRepo repository.ClinicRepository, store repository.SessionStore,
	tokens auth.SessionTokenService, ttl time.Duration) *Service {
	return &Service{
		clinicRepo: clinicRepo,
		store:      store,
		tokens:     tokens,
		ttl:        ttl,
	}
}

// SignIn resolves a clinic user by case-insensitive email, loads the owning
// clinic, persists the session hint and issues a session token.
func (s *Service) SignIn(ctx context.Context, email string) (*model.SignInResponse, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, apperrors.InvalidInput("missing email")
	}

	sess, err := s.Resolve(ctx, email)
	if err != nil {
		return nil, err
	}

	sessionID := uuid.New()
	if err := s.store.Put(ctx, sessionID, sess.User.Email, s.ttl); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	token, err := s.tokens.Generate(sessionID, sess.User.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	return &model.SignInResponse{
		Token:  token,
		User:   sess.User,
		Clinic: sess.Clinic,
	}, nil
}

// Resolve looks up the (user, clinic) pair for an email. Fails with NotFound
// when either record is missing.
func (s *Service) Resolve(ctx context.Context, email string) (*model.Session, error) {
	user, err := s.clinicRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	clinic, err := s.clinicRepo.Get(ctx, user.ClinicID)
	if err != nil {
		return nil, err
	}

	return &model.Session{User: user, Clinic: clinic}, nil
}

// SignOut drops the persisted session hint. No backend side effects.
func (s *Service) SignOut(ctx context.Context, sessionID uuid.UUID) error {
	return s.store.Delete(ctx, sessionID)
}
