package favorites

import (
	"github.com/gin-gonic/gin"

	"github.com/minjaekim/sportsmate-web/internal/middleware"
	"github.com/minjaekim/sportsmate-web/internal/upstream"
)

// RegisterRoutes registers the favorites routes
func RegisterRoutes(router *gin.RouterGroup, client *upstream.Client) {
	handler := NewHandler(client)
	requireSession := middleware.RequireSession(client.Store())

	favorites := router.Group("/favorites", requireSession)
	{
		favorites.GET("", handler.List)
		favorites.POST("", handler.Add)
		favorites.DELETE("/:id", handler.Remove)
	}
}
