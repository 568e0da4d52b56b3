// Package httpkit holds the gin helpers every module handler shares:
// JSON responses, error mapping, auth middleware and identity lookup.
package httpkit

import (
	"errors"
	"net/http"

	"gigportal_backend/platform/apperr"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const msgValidationFailed = "validation failed"

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// FieldError names one rejected request field. Field is the json or form name.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

func Error(c *gin.Context, status int, message string, details interface{}) {
	c.JSON(status, ErrorResponse{Error: message, Details: details})
}

// ValidationError answers 400 with one FieldError per failed rule.
func ValidationError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}
	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()})
	}
	Error(c, http.StatusBadRequest, msgValidationFailed, fields)
}

// HandleError writes err and reports whether there was one. An *apperr.Error
// anywhere in the chain picks the status from its Kind. Anything else is a 500
// whose text stays in the gin error list for the request logger.
func HandleError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	if domainErr, ok := apperr.As(err); ok {
		Error(c, domainErr.HTTPStatus(), domainErr.Message, domainErr.Details)
		return true
	}

	_ = c.Error(err)
	Error(c, http.StatusInternalServerError, "internal server error", nil)
	return true
}
