package utils

import (
	"log"
	"net/http"

	"storefront-backend/internal/apperr"

	"github.com/gin-gonic/gin"
)

// MessageResponse sends a simple message response
func MessageResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// ErrorResponse sends a standard error JSON response
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// HandleError decodes a service error into the client response. Typed
// errors map to their status; anything untyped becomes a 500 with the
// cause logged server-side and withheld from the client.
func HandleError(c *gin.Context, err error) {
	appErr := apperr.From(err)

	if appErr.Status == http.StatusInternalServerError {
		log.Printf("Internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, appErr)
	}

	body := gin.H{"message": appErr.Message}
	if appErr.Expired {
		body["expired"] = true
	}
	c.JSON(appErr.Status, body)
}
