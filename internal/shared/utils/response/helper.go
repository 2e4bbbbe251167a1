package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func RespondJSON(c *gin.Context, status string, code int, message string, data interface{}, errors interface{}) {
	c.JSON(code, StandardApiResponse{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errors,
	})
}

// RespondSuccess writes a success envelope
func RespondSuccess(c *gin.Context, code int, message string, data interface{}) {
	RespondJSON(c, "success", code, message, data, nil)
}

// RespondError writes an error envelope and records err on the gin context
// so the request logger picks it up
func RespondError(c *gin.Context, code int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	RespondJSON(c, "error", code, message, nil, nil)
}

// RespondValidationError writes a 400 with one entry per failed field
func RespondValidationError(c *gin.Context, err error) {
	RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, FieldErrors(err))
}

// FieldErrors flattens validator errors into field -> rule pairs
func FieldErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fe.Namespace(),
			Rule:    fe.Tag(),
			Param:   fe.Param(),
			Message: fe.Error(),
		})
	}
	return out
}
