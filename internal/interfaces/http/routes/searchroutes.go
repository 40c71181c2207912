package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tradesift-io/tradesift/internal/domain/shipment"
	"github.com/tradesift-io/tradesift/internal/interfaces/http/handlers"
	"github.com/tradesift-io/tradesift/internal/interfaces/http/middleware"
	"github.com/tradesift-io/tradesift/internal/shared/authorization"
)

// SearchRouteConfig holds dependencies for search, download and
// analytics routes.
type SearchRouteConfig struct {
	SearchHandler    *handlers.SearchHandler
	AnalyticsHandler *handlers.AnalyticsHandler
	AuthMiddleware   *middleware.AuthMiddleware
	CustomerLoader   *middleware.CustomerLoader
}

// SetupSearchRoutes configures one route group per trade direction.
// Search and analytics accept anonymous callers (restricted tier);
// downloads require an authenticated customer.
func SetupSearchRoutes(engine *gin.Engine, cfg *SearchRouteConfig) {
	for _, d := range []struct {
		prefix    string
		direction shipment.Direction
	}{
		{"/export", shipment.DirectionExport},
		{"/import", shipment.DirectionImport},
	} {
		group := engine.Group(d.prefix)

		group.POST("/search",
			cfg.AuthMiddleware.OptionalAuth(),
			cfg.CustomerLoader.Load(),
			cfg.SearchHandler.Search(d.direction))

		group.POST("/download",
			cfg.AuthMiddleware.RequireAuth(),
			authorization.RequireCustomer(),
			cfg.CustomerLoader.Load(),
			cfg.SearchHandler.Download(d.direction))

		group.POST("/analysis/sort",
			cfg.AuthMiddleware.OptionalAuth(),
			cfg.CustomerLoader.Load(),
			cfg.AnalyticsHandler.SortAnalysis(d.direction))

		group.POST("/analysis/detail",
			cfg.AuthMiddleware.OptionalAuth(),
			cfg.CustomerLoader.Load(),
			cfg.AnalyticsHandler.DetailAnalysis(d.direction))
	}
}
