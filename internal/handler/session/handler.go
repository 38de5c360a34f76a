package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clinicpass/clinic-api/internal/handler"
	"github.com/clinicpass/clinic-api/internal/middleware"
	"github.com/clinicpass/clinic-api/internal/model"
	"github.com/clinicpass/clinic-api/internal/service/session"
)

type Handler struct {
	service *session.Service
}

func NewHandler(service *session.Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes registers the sign-in endpoint, which needs no session.
func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.POST("/sessions", h.SignIn)
}

// RegisterRoutes registers the session endpoints that require a session.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.DELETE("/sessions", h.SignOut)
}

func (h *Handler) SignIn(c *gin.Context) {
	var req model.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	resp, err := h.service.SignIn(c.Request.Context(), req.Email)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(resp))
}

func (h *Handler) SignOut(c *gin.Context) {
	sessionID, ok := c.Get(middleware.ContextSessionID)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("no active session"))
		return
	}

	if err := h.service.SignOut(c.Request.Context(), sessionID.(uuid.UUID)); err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"signed_out": true}))
}
