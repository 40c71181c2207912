package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tradesift-io/tradesift/internal/interfaces/http/handlers"
	"github.com/tradesift-io/tradesift/internal/interfaces/http/middleware"
	"github.com/tradesift-io/tradesift/internal/shared/authorization"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupAuthRoutes configures authentication routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/register", cfg.AuthHandler.Register)
		auth.POST("/login", cfg.AuthHandler.Login)
		auth.POST("/admin/login", cfg.AuthHandler.LoginAdmin)
		auth.POST("/refresh", cfg.AuthHandler.RefreshToken)

		auth.GET("/me",
			cfg.AuthMiddleware.RequireAuth(),
			authorization.RequireCustomer(),
			cfg.AuthHandler.GetProfile)
		auth.POST("/change-password",
			cfg.AuthMiddleware.RequireAuth(),
			authorization.RequireCustomer(),
			cfg.AuthHandler.ChangePassword)
	}
}
