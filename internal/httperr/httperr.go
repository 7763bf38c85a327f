package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every failure response carries either {"error": ...} or, for field-level
// validation problems, {"errors": [...]}.

type HTTPError struct {
	Error string `json:"error"`
}

func Write(c *gin.Context, status int, message string) {
	c.JSON(status, HTTPError{Error: message})
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	Write(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	Write(c, http.StatusForbidden, message)
}

func NotFound(c *gin.Context, message string) {
	Write(c, http.StatusNotFound, message)
}

func Internal(c *gin.Context) {
	Write(c, http.StatusInternalServerError, "Internal server error")
}

func DBDown(c *gin.Context) {
	Write(c, http.StatusInternalServerError, "Database connection failed")
}
