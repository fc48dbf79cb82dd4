package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/minjaekim/sportsmate-web/internal/pkg/logger"
	"github.com/minjaekim/sportsmate-web/internal/upstream"
)

// RegisterRoutes registers the auth-related routes
func RegisterRoutes(router *gin.RouterGroup, client *upstream.Client, emails EmailStore, log *logger.Logger) {
	handler := NewHandler(client, emails, log)

	auth := router.Group("/auth")
	{
		auth.POST("/login", handler.Login)
		auth.POST("/logout", handler.Logout)
		auth.POST("/signup", handler.Signup)
		auth.POST("/check-email", handler.CheckEmail)
		auth.POST("/check-nickname", handler.CheckNickname)
		auth.GET("/session", handler.Session)
		auth.GET("/kakao-config", handler.KakaoConfig)
	}
}
