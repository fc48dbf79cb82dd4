package media

import (
	"github.com/gin-gonic/gin"

	"github.com/minjaekim/sportsmate-web/internal/middleware"
	"github.com/minjaekim/sportsmate-web/internal/pkg/cloudinary"
	"github.com/minjaekim/sportsmate-web/internal/upstream"
)

// RegisterRoutes registers the media upload route
func RegisterRoutes(router *gin.RouterGroup, client *upstream.Client, cld *cloudinary.Service) {
	handler := NewHandler(cld)
	requireSession := middleware.RequireSession(client.Store())

	media := router.Group("/media", requireSession)
	{
		media.POST("/upload", handler.UploadImage)
	}
}
