package v1

import (
	"errors"
	"sync"

	"go-candidate-backend/internal/domain"
	"go-candidate-backend/pkg/apperror"
	"go-candidate-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// registerValidators installs the custom tags on gin's shared validator.
func registerValidators() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			validation.RegisterValidators(v)
		}
	})
}

// bindJSON decodes and validates the body, mapping every failure to a 422
// carrying per field messages.
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.Error(bindError(err))
		return false
	}
	return true
}

func bindError(err error) *apperror.AppError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return apperror.Validation(domain.MsgValidationFailed, validation.FormatValidationErrors(verrs))
	}
	return apperror.Validation(domain.MsgValidationFailed, []string{"body: " + err.Error()})
}
