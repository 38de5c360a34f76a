package wallet

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clinicpass/clinic-api/internal/handler"
	"github.com/clinicpass/clinic-api/internal/middleware"
	"github.com/clinicpass/clinic-api/internal/service/wallet"
)

type Handler struct {
	service *wallet.Service
}

func NewHandler(service *wallet.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	w := r.Group("/wallet")
	{
		w.GET("/balance", h.Balance)
		w.GET("/transactions", h.Transactions)
	}
}

func (h *Handler) Balance(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("no active session"))
		return
	}

	balance, err := h.service.Balance(c.Request.Context(), sess.Clinic.ID)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(balance))
}

// Transactions accepts either period=week|month|all or an explicit since
// timestamp. The period cutoffs are computed here, relative to now.
func (h *Handler) Transactions(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("no active session"))
		return
	}

	var since *time.Time
	switch period := c.DefaultQuery("period", "all"); period {
	case "week":
		t := time.Now().AddDate(0, 0, -7)
		since = &t
	case "month":
		t := time.Now().AddDate(0, 0, -30)
		since = &t
	case "all":
	default:
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid period"))
		return
	}

	if v := c.Query("since"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid since timestamp"))
			return
		}
		since = &t
	}

	transactions, err := h.service.Transactions(c.Request.Context(), sess.Clinic.ID, since)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(transactions))
}
