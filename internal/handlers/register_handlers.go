package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/pranavks/user_account_app/internal/core/ports/services"
	"github.com/pranavks/user_account_app/internal/middleware"
	"github.com/pranavks/user_account_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container interfaces.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public authentication routes
	registerAuthRoutes(r, services)

	// Authenticated API v1 routes
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.AccessTokenSecret))
	registerUserRoutes(v1, services.User)
	registerSessionRoutes(v1, services)
}
