package ads

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clinicpass/clinic-api/internal/handler"
	"github.com/clinicpass/clinic-api/internal/middleware"
	"github.com/clinicpass/clinic-api/internal/model"
	"github.com/clinicpass/clinic-api/internal/service/ads"
)

type Handler struct {
	service *ads.Service
}

func NewHandler(service *ads.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/ads")
	{
		group.GET("", h.ListAds)
		group.POST("", h.CreateAd)
		group.PUT("/:id", h.UpdateAd)
		group.PATCH("/:id/toggle", h.ToggleAd)
		group.DELETE("/:id", h.DeleteAd)
	}
}

func (h *Handler) ListAds(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("no active session"))
		return
	}

	list, err := h.service.List(c.Request.Context(), sess.Clinic.ID)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(list))
}

func (h *Handler) CreateAd(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("no active session"))
		return
	}

	var req model.CreateAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	ad, err := h.service.Create(c.Request.Context(), sess.Clinic.ID, &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(ad))
}

func (h *Handler) UpdateAd(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("no active session"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid ad ID"))
		return
	}

	var req model.UpdateAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	ad, err := h.service.Update(c.Request.Context(), sess.Clinic.ID, id, &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(ad))
}

func (h *Handler) ToggleAd(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("no active session"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid ad ID"))
		return
	}

	ad, err := h.service.ToggleActive(c.Request.Context(), sess.Clinic.ID, id)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(ad))
}

func (h *Handler) DeleteAd(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("no active session"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid ad ID"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), sess.Clinic.ID, id); err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"deleted": true}))
}
