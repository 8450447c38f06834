package response

import (
	"github.com/gin-gonic/gin"
)

// The admin front-end expects bare {"message": ...} / {"error": ...}
// bodies, so responses are written without an envelope.

func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

func Err(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// AbortErr writes an error body and stops the handler chain. Used by
// middleware.
func AbortErr(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
