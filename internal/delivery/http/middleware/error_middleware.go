package middleware

import (
	"errors"
	"net/http"

	"go-candidate-backend/internal/delivery/http/response"
	"go-candidate-backend/internal/domain"
	"go-candidate-backend/pkg/apperror"
	"go-candidate-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Kind == apperror.KindInternal {
				logger.Log.Error("Internal Server Error", "error", appErr.Err, "path", c.FullPath(), "request_id", c.GetString(string(domain.KeyRequestID)))
			}
			var detail interface{} = appErr.Message
			if appErr.Details != nil {
				detail = appErr.Details
			}
			response.Error(c, appErr.Code, detail)
			return
		}

		// SECURITY: never expose internal error details to clients.
		logger.Log.Error("Unhandled error", "error", err, "path", c.FullPath(), "request_id", c.GetString(string(domain.KeyRequestID)))
		response.Error(c, http.StatusInternalServerError, "Internal Server Error")
	}
}
