// README: Panic recovery middleware; nothing in the pipeline may crash the process.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/logger"
)

func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Log.WithField("panic", r).Error("Recovered from handler panic")
				c.AbortWithStatus(http.StatusInternalServerError)
			}
		}()
		c.Next()
	}
}
