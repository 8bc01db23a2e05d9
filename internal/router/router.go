package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/nutrimentor/backend/internal/api"
	"github.com/pageza/nutrimentor/backend/internal/middleware"
	"github.com/pageza/nutrimentor/backend/internal/service"
)

// SetupRouter configures the application routes
func SetupRouter(
	authHandler *api.AuthHandler,
	chatHandler *api.ChatHandler,
	feedbackHandler *api.FeedbackHandler,
	preferencesHandler *api.PreferencesHandler,
	profileHandler *api.ProfileHandler,
	authService service.IAuthService,
) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")

	// Public auth routes
	authHandler.RegisterRoutes(v1)

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	{
		chatHandler.RegisterRoutes(protected)
		feedbackHandler.RegisterRoutes(protected)
		preferencesHandler.RegisterRoutes(protected)
		profileHandler.RegisterRoutes(protected)
	}

	return router
}
