package response

import (
	"go-candidate-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// Message is the body of endpoints that only acknowledge an action.
type Message struct {
	Message string `json:"message"`
}

// ErrorBody standardizes the API JSON error response
type ErrorBody struct {
	Detail    interface{} `json:"detail"`
	RequestID string      `json:"request_id,omitempty"`
}

// JSON sends a success payload as is.
func JSON(c *gin.Context, code int, payload interface{}) {
	c.JSON(code, payload)
}

// Success sends a {"message": ...} body.
func Success(c *gin.Context, code int, message string) {
	c.JSON(code, Message{Message: message})
}

// Error sends an error response. detail is the message string, or a list of
// field messages for validation failures.
func Error(c *gin.Context, code int, detail interface{}) {
	c.JSON(code, ErrorBody{
		Detail:    detail,
		RequestID: c.GetString(string(domain.KeyRequestID)),
	})
}
