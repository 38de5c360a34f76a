package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/clinicpass/clinic-api/internal/repository"
	apperrors "github.com/clinicpass/clinic-api/pkg/errors"
)

const sessionKeyPrefix = "session:"

// sessionStore keeps the session hint (the signed-in email) in Redis,
// keyed by session id.
type sessionStore struct {
	client *redis.Client
}

func NewSessionStore(url string) (repository.SessionStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &sessionStore{client: client}, nil
}

func (s *sessionStore) Put(ctx context.Context, sessionID uuid.UUID, email string, ttl time.Duration) error {
	if err := s.client.Set(ctx, sessionKeyPrefix+sessionID.String(), email, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session hint: %w", err)
	}
	return nil
}

func (s *sessionStore) Get(ctx context.Context, sessionID uuid.UUID) (string, error) {
	email, err := s.client.Get(ctx, sessionKeyPrefix+sessionID.String()).Result()
	if errors.Is(err, redis.Nil) {
		return "", apperrors.NotFound("session")
	}
	if err != nil {
		return "", fmt.Errorf("failed to read session hint: %w", err)
	}
	return email, nil
}

func (s *sessionStore) Delete(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+sessionID.String()).Err(); err != nil {
		return fmt.Errorf("failed to delete session hint: %w", err)
	}
	return nil
}
