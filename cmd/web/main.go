// ================== cmd/web/main.go ==================
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/minjaekim/sportsmate-web/internal/config"
	"github.com/minjaekim/sportsmate-web/internal/middleware"
	"github.com/minjaekim/sportsmate-web/internal/pkg/logger"
	"github.com/minjaekim/sportsmate-web/internal/pkg/ratelimit"
	"github.com/minjaekim/sportsmate-web/internal/pkg/response"
	"github.com/minjaekim/sportsmate-web/internal/routes"
	"github.com/minjaekim/sportsmate-web/internal/upstream"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load config
	cfg := config.Load()

	//If we are running in production, be quiet and stop logging so much.
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
		logger.SetGlobalLevel(logger.INFO)
	} else {
		logger.SetGlobalLevel(logger.DEBUG)
	}
	log := logger.Default()

	// Session state lives in a small JSON file next to the binary
	store := upstream.NewFileStore(cfg.StatePath, log)
	client := upstream.New(cfg.APIBaseURL, store, log)

	limiter := ratelimit.New(cfg.RateLimit, time.Duration(cfg.RateWindowSecs)*time.Second)
	limiter.StartCleanup(5 * time.Minute)

	// Setup Gin
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.FrontendURL))
	router.Use(ratelimit.Middleware(limiter))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, map[string]interface{}{
			"status": "ok",
			"time":   time.Now().Unix(),
		})
	})

	// Register all routes
	routes.SetupRoutes(router, client, store, cfg, log)

	// config server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}
	// start the server
	go func() {
		log.Info("Server starting on port %s (backend %s)", cfg.Port, cfg.APIBaseURL)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited")
}
