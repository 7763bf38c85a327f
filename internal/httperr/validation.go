package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []FieldError `json:"errors"`
}

// Binding translates a ShouldBindJSON failure into the field-level
// {"errors": [...]} shape. Non-validator failures (malformed JSON, wrong
// types) become a single body-level entry.
func Binding(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, ValidationErrors{
			Errors: []FieldError{{Field: "body", Message: "Malformed request body"}},
		})
		return
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   strings.ToLower(fe.Field()),
			Message: fieldMessage(fe),
		})
	}
	c.JSON(http.StatusBadRequest, ValidationErrors{Errors: out})
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		if field == "email" {
			return "Valid email is required"
		}
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "Valid email is required"
	case "min":
		if fe.Kind().String() == "string" && field == "password" {
			return fmt.Sprintf("Password must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("%s must not be empty", field)
	case "oneof":
		return fmt.Sprintf("%s must be either %s", field, strings.ReplaceAll(fe.Param(), " ", " or "))
	case "gt", "gte":
		return fmt.Sprintf("%s must be positive", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
