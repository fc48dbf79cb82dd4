package applications

import (
	"github.com/gin-gonic/gin"

	"github.com/minjaekim/sportsmate-web/internal/middleware"
	"github.com/minjaekim/sportsmate-web/internal/upstream"
)

// RegisterRoutes registers the join-request routes under /posts
func RegisterRoutes(router *gin.RouterGroup, client *upstream.Client) {
	handler := NewHandler(client)
	requireSession := middleware.RequireSession(client.Store())

	posts := router.Group("/posts", requireSession)
	{
		posts.POST("/:id/apply", handler.Apply)
		posts.POST("/:id/applications/:userId/approve", handler.Approve)
		posts.POST("/:id/applications/:userId/reject", handler.Reject)
	}
}
