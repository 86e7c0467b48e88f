package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler is a middleware that catches panics and returns the generic
// error envelope instead of letting the fault reach the client.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err))
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends the standard {"error": ...} envelope and logs the detail
// server-side. Internals are never exposed to the client.
func JSONError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		GetLogger().Warn(message, zap.Error(err))
	}
	c.JSON(status, gin.H{"error": message})
}
