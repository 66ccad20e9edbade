package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/rabi993/banking-system/internal/core/ports/services"
	"github.com/rabi993/banking-system/internal/middleware"
	"github.com/rabi993/banking-system/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container interfaces.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public authentication routes
	registerAuthRoutes(r, cfg, services)

	// Role-scoped API v1 routes
	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 groups, each guarded by the auth
// middleware for its role.
func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1")

	me := v1.Group("/accounts/me", middleware.AuthMiddleware(cfg.JWTSecret, middleware.RoleUser))
	registerAccountRoutes(me, services.User)

	admin := v1.Group("/admin", middleware.AuthMiddleware(cfg.JWTSecret, middleware.RoleAdmin))
	registerAdminRoutes(admin, services.Admin)
}
