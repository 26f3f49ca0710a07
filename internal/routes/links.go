package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/oliverjumpertz/link-shortener/internal/handlers"
	"github.com/oliverjumpertz/link-shortener/internal/middleware"
)

// RegisterLinkRoutes registers the public redirect and the authenticated
// mutation/statistics endpoints. Redirects stay unauthenticated.
func RegisterLinkRoutes(r *gin.Engine) {
	r.GET("/health", handlers.Health)
	r.GET("/:id", handlers.RedirectLink)

	authorized := r.Group("/", middleware.APIKeyAuth())
	authorized.POST("/create", handlers.CreateLink)
	authorized.PATCH("/:id", handlers.UpdateLink)
	authorized.GET("/:id/statistics", handlers.GetLinkStatistics)
}
