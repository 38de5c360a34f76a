package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims carries the session hint inside a signed token. The token is
// a transport for the last signed-in email, not a credential: the server
// re-resolves the user and clinic from the email on every request.
type SessionClaims struct {
	SessionID uuid.UUID `json:"session_id"`
	Email     string    `json:"email"`
	jwt.RegisteredClaims
}

// SessionTokenService issues and parses session tokens
type SessionTokenService interface {
	Generate(sessionID uuid.UUID, email string) (string, error)
	Parse(token string) (*SessionClaims, error)
}

type sessionTokenService struct {
	secret []byte
	expiry time.Duration
}

func NewSessionTokenService(secret string, expiry time.Duration) SessionTokenService {
	return &sessionTokenService{
		secret: []byte(secret),
		expiry: expiry,
	}
}

func (s *sessionTokenService) Generate(sessionID uuid.UUID, email string) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		SessionID: sessionID,
		Email:     email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

func (s *sessionTokenService) Parse(tokenStr string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid session token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid session token claims")
	}
	return claims, nil
}
