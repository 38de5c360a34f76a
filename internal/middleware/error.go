package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/clinicpass/clinic-api/internal/handler"
	apperrors "github.com/clinicpass/clinic-api/pkg/errors"
)

// ErrorHandler logs and renders any errors attached to the gin context.
// Business-rule rejections never reach here: services return those as data.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		requestID := c.GetString(ContextRequestID)

		for _, e := range c.Errors {
			log.Error().
				Err(e.Err).
				Str("request_id", requestID).
				Str("path", c.Request.URL.Path).
				Str("method", c.Request.Method).
				Str("client_ip", c.ClientIP()).
				Msg("Request error")
		}

		lastErr := c.Errors.Last()
		status := handler.StatusForKind(apperrors.KindOf(lastErr.Err))
		c.JSON(status, handler.NewErrorResponse(lastErr.Error()))
	}
}
