package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSONMessage writes the message-envelope shape the booking frontend expects.
func JSONMessage(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

// JSONInternalError answers with a fixed body. Store and driver errors are
// logged at the call site, never returned to the client.
func JSONInternalError(c *gin.Context) {
	JSONMessage(c, http.StatusInternalServerError, "Internal server error")
}
