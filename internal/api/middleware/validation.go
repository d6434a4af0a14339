package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apierrors "call-summary/internal/api/errors"
	apperrors "call-summary/internal/app/errors"
)

// Validator interface for domain validation
type Validator interface {
	Validate() error
}

// ValidateForm binds a multipart or urlencoded form into req, then runs
// struct tag and domain validation.
func ValidateForm(c *gin.Context, req interface{}) error {
	if err := c.ShouldBind(req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return apierrors.WrapError(apperrors.ErrFileTooLarge, apierrors.KindBadRequest, "Invalid upload")
		}

		var validationErrs validator.ValidationErrors
		if !errors.As(err, &validationErrs) {
			return apierrors.NewBadRequestError("invalid form data: " + err.Error())
		}

		fields := make(map[string]string, len(validationErrs))
		for _, fieldError := range validationErrs {
			field := strings.ToLower(fieldError.Field())
			switch fieldError.Tag() {
			case "required":
				fields[field] = "is required"
			default:
				fields[field] = "is invalid"
			}
		}
		return apierrors.NewFieldError("Validation failed", fields)
	}

	if v, ok := req.(Validator); ok {
		return v.Validate()
	}
	return nil
}

// MaxBodySize caps the request body at limit bytes
func MaxBodySize(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
