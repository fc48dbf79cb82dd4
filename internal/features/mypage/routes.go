package mypage

import (
	"github.com/gin-gonic/gin"

	"github.com/minjaekim/sportsmate-web/internal/middleware"
	"github.com/minjaekim/sportsmate-web/internal/upstream"
)

// RegisterRoutes registers the mypage routes
func RegisterRoutes(router *gin.RouterGroup, client *upstream.Client) {
	handler := NewHandler(client)
	requireSession := middleware.RequireSession(client.Store())

	mypage := router.Group("/mypage", requireSession)
	{
		mypage.GET("", handler.Overview)
		mypage.GET("/profile", handler.Profile)
		mypage.PUT("/profile", handler.UpdateProfile)
		mypage.GET("/posts", handler.MyPosts)
		mypage.GET("/applications", handler.MyApplications)
	}
}
