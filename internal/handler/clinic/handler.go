package clinic

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinicpass/clinic-api/internal/handler"
	"github.com/clinicpass/clinic-api/internal/middleware"
	"github.com/clinicpass/clinic-api/internal/model"
	"github.com/clinicpass/clinic-api/internal/repository"
	"github.com/clinicpass/clinic-api/internal/service/clinic"
)

type Handler struct {
	service     *clinic.Service
	serviceRepo repository.ServiceRepository
}

func NewHandler(service *clinic.Service, serviceRepo repository.ServiceRepository) *Handler {
	return &Handler{service: service, serviceRepo: serviceRepo}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/clinic", h.GetClinic)
	r.PUT("/clinic", h.UpdateClinic)
	r.GET("/services", h.ListServices)
}

func (h *Handler) GetClinic(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("no active session"))
		return
	}

	clinic, err := h.service.Get(c.Request.Context(), sess.Clinic.ID)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(clinic))
}

func (h *Handler) UpdateClinic(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("no active session"))
		return
	}

	var req model.UpdateClinicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	updated, err := h.service.Update(c.Request.Context(), sess.Clinic.ID, &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(updated))
}

func (h *Handler) ListServices(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("no active session"))
		return
	}

	services, err := h.serviceRepo.List(c.Request.Context(), sess.Clinic.ID)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(services))
}
