package token

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinicpass/clinic-api/internal/handler"
	"github.com/clinicpass/clinic-api/internal/middleware"
	"github.com/clinicpass/clinic-api/internal/model"
	"github.com/clinicpass/clinic-api/internal/service/token"
	"github.com/clinicpass/clinic-api/pkg/metrics"
)

type Handler struct {
	service *token.Service
	metrics *metrics.Metrics
}

func NewHandler(service *token.Service, m *metrics.Metrics) *Handler {
	return &Handler{service: service, metrics: m}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/tokens/validate", h.ValidateToken)
}

// ValidateToken runs the redemption rule chain. Rejections are part of the
// result payload, not HTTP errors: the front ends render them inline.
func (h *Handler) ValidateToken(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("no active session"))
		return
	}

	var req model.ValidateTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	result, err := h.service.Validate(c.Request.Context(), sess, req.Token)
	if err != nil {
		handler.Error(c, err)
		return
	}

	if h.metrics != nil {
		h.metrics.TokenValidations.WithLabelValues(result.Code).Inc()
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(result))
}
