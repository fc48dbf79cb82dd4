package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/minjaekim/sportsmate-web/internal/config"
	"github.com/minjaekim/sportsmate-web/internal/features/applications"
	"github.com/minjaekim/sportsmate-web/internal/features/auth"
	"github.com/minjaekim/sportsmate-web/internal/features/favorites"
	"github.com/minjaekim/sportsmate-web/internal/features/media"
	"github.com/minjaekim/sportsmate-web/internal/features/mypage"
	"github.com/minjaekim/sportsmate-web/internal/features/posts"
	"github.com/minjaekim/sportsmate-web/internal/pkg/cloudinary"
	"github.com/minjaekim/sportsmate-web/internal/pkg/logger"
	"github.com/minjaekim/sportsmate-web/internal/upstream"
)

func SetupRoutes(router *gin.Engine, client *upstream.Client, emails auth.EmailStore, cfg *config.Config, log *logger.Logger) {
	// API group
	api := router.Group("/api")

	// Cloudinary is optional; without credentials the upload route answers 503
	cld, err := cloudinary.NewService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.CloudinaryFolder)
	if err != nil {
		log.Warn("cloudinary disabled: %v", err)
	}

	// Register feature routes
	auth.RegisterRoutes(api, client, emails, log)
	posts.RegisterRoutes(api, client)
	favorites.RegisterRoutes(api, client)
	applications.RegisterRoutes(api, client)
	mypage.RegisterRoutes(api, client)
	media.RegisterRoutes(api, client, cld)
}
