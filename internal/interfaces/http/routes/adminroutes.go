package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tradesift-io/tradesift/internal/domain/shipment"
	"github.com/tradesift-io/tradesift/internal/interfaces/http/handlers"
	"github.com/tradesift-io/tradesift/internal/interfaces/http/middleware"
	"github.com/tradesift-io/tradesift/internal/shared/authorization"
)

// AdminRouteConfig holds dependencies for operator routes.
type AdminRouteConfig struct {
	AdminHandler   *handlers.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupAdminRoutes configures operator routes. Every route requires an
// admin access token.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	admin := engine.Group("/admin",
		cfg.AuthMiddleware.RequireAuth(),
		authorization.RequireAdmin())
	{
		admin.PUT("/customers/:id/subscription", cfg.AdminHandler.RenewSubscription)
		admin.POST("/export/ingest", cfg.AdminHandler.Ingest(shipment.DirectionExport))
		admin.POST("/import/ingest", cfg.AdminHandler.Ingest(shipment.DirectionImport))
	}
}
