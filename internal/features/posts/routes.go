package posts

import (
	"github.com/gin-gonic/gin"

	"github.com/minjaekim/sportsmate-web/internal/middleware"
	"github.com/minjaekim/sportsmate-web/internal/upstream"
)

// RegisterRoutes registers the post browse and write routes
func RegisterRoutes(router *gin.RouterGroup, client *upstream.Client) {
	handler := NewHandler(client)
	requireSession := middleware.RequireSession(client.Store())

	posts := router.Group("/posts")
	{
		// Browsing is open; writing needs a session
		posts.GET("", handler.List)
		posts.GET("/:id", handler.Get)

		posts.POST("", requireSession, handler.Create)
		posts.PUT("/:id", requireSession, handler.Update)
		posts.DELETE("/:id", requireSession, handler.Delete)
	}
}
