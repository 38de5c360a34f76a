package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"

	"github.com/clinicpass/clinic-api/internal/handler"
	"github.com/clinicpass/clinic-api/internal/model"
	"github.com/clinicpass/clinic-api/internal/repository"
	"github.com/clinicpass/clinic-api/internal/service/session"
	"github.com/clinicpass/clinic-api/pkg/auth"
	apperrors "github.com/clinicpass/clinic-api/pkg/errors"
)

const (
	ContextSession   = "session"
	ContextSessionID = "session_id"
)

// SessionMiddleware authenticates requests by re-resolving the session hint
// carried in the bearer token. Resolved (user, clinic) pairs are cached
// in-process for a short TTL so each request does not cost two extra
// queries.
type SessionMiddleware struct {
	sessionSvc *session.Service
	tokens     auth.SessionTokenService
	store      repository.SessionStore
	cache      *gocache.Cache
}

func NewSessionMiddleware(sessionSvc *session.Service, tokens auth.SessionTokenService,
	store repository.SessionStore, cacheTTL time.Duration) *SessionMiddleware {
	return &SessionMiddleware{
		sessionSvc: sessionSvc,
		tokens:     tokens,
		store:      store,
		cache:      gocache.New(cacheTTL, 2*cacheTTL),
	}
}

// Authenticate parses the bearer token, checks the session hint still exists
// in the store, and injects the resolved session into the request context.
func (m *SessionMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, handler.NewErrorResponse("missing authorization header"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, handler.NewErrorResponse("invalid authorization format"))
			return
		}

		claims, err := m.tokens.Parse(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, handler.NewErrorResponse("invalid session token"))
			return
		}

		// A signed-out session leaves no hint behind.
		email, err := m.store.Get(c.Request.Context(), claims.SessionID)
		if err != nil {
			if apperrors.IsKind(err, apperrors.KindNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, handler.NewErrorResponse("session expired"))
				return
			}
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, handler.NewErrorResponse("backend unavailable"))
			return
		}

		sess, err := m.resolve(c, email)
		if err != nil {
			if apperrors.IsKind(err, apperrors.KindNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, handler.NewErrorResponse("session no longer valid"))
				return
			}
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, handler.NewErrorResponse("backend unavailable"))
			return
		}

		c.Set(ContextSession, sess)
		c.Set(ContextSessionID, claims.SessionID)
		c.Next()
	}
}

func (m *SessionMiddleware) resolve(c *gin.Context, email string) (*model.Session, error) {
	if cached, ok := m.cache.Get(email); ok {
		return cached.(*model.Session), nil
	}

	sess, err := m.sessionSvc.Resolve(c.Request.Context(), email)
	if err != nil {
		return nil, err
	}

	m.cache.Set(email, sess, gocache.DefaultExpiration)
	return sess, nil
}

// SessionFromContext returns the resolved session set by Authenticate.
func SessionFromContext(c *gin.Context) (*model.Session, bool) {
	v, ok := c.Get(ContextSession)
	if !ok {
		return nil, false
	}
	sess, ok := v.(*model.Session)
	return sess, ok
}
