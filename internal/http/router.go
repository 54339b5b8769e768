// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/http/handlers"
	"voyago/internal/http/middleware"
)

func NewRouter(chatHandler *handlers.ChatHandler, tripHandler *handlers.TripHandler) http.Handler {
	r := gin.New()
	r.Use(middleware.Recovery(), middleware.Logging())

	r.POST("/api/chat", chatHandler.Chat)
	r.GET("/api/trips", tripHandler.ListTrips)
	r.GET("/api/usage", tripHandler.ListUsage)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
