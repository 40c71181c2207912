package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	analyticsusecases "github.com/tradesift-io/tradesift/internal/application/analytics/usecases"
	"github.com/tradesift-io/tradesift/internal/application/entitlement"
	ingestusecases "github.com/tradesift-io/tradesift/internal/application/ingest/usecases"
	searchusecases "github.com/tradesift-io/tradesift/internal/application/search/usecases"
	userusecases "github.com/tradesift-io/tradesift/internal/application/user/usecases"
	"github.com/tradesift-io/tradesift/internal/infrastructure/auth"
	"github.com/tradesift-io/tradesift/internal/infrastructure/cache"
	"github.com/tradesift-io/tradesift/internal/infrastructure/config"
	"github.com/tradesift-io/tradesift/internal/infrastructure/repository"
	"github.com/tradesift-io/tradesift/internal/infrastructure/spreadsheet"
	"github.com/tradesift-io/tradesift/internal/interfaces/http/handlers"
	"github.com/tradesift-io/tradesift/internal/interfaces/http/middleware"
	"github.com/tradesift-io/tradesift/internal/interfaces/http/routes"
	"github.com/tradesift-io/tradesift/internal/shared/logger"
)

// Router assembles the HTTP surface: repositories, use cases, handlers
// and middleware, wired in one place.
type Router struct {
	engine *gin.Engine
	cfg    *config.Config
	logger logger.Interface
}

// NewRouter wires every dependency and registers all routes. The Redis
// client may be nil; the service then runs without the subscription
// cache and every entitlement lookup hits the database.
func NewRouter(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, log logger.Interface) *Router {
	gin.SetMode(ginMode(cfg.Server.Mode))

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS())

	// Infrastructure
	shipmentRepo := repository.NewShipmentRepository(db, log)
	customerRepo := repository.NewCustomerRepository(db, log)
	adminRepo := repository.NewAdminRepository(db, log)

	jwtService := auth.NewJWTService(
		cfg.Auth.JWT.Secret,
		cfg.Auth.JWT.AccessExpMinutes,
		cfg.Auth.JWT.RefreshExpDays,
	)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	reader := spreadsheet.NewXLSXShipmentReader(log)

	var customerCache cache.CustomerSubscriptionCache
	var invalidator searchusecases.SubscriptionCacheInvalidator
	if redisClient != nil {
		redisCache := cache.NewRedisCustomerSubscriptionCache(redisClient, log)
		customerCache = redisCache
		invalidator = redisCache
	}

	// Application
	evaluator := entitlement.NewEvaluator(log)
	policy := searchusecases.ParseDecrementPolicy(cfg.Quota.DecrementPolicy)

	searchUC := searchusecases.NewSearchShipmentsUseCase(shipmentRepo, log)
	downloadUC := searchusecases.NewDownloadShipmentsUseCase(
		shipmentRepo, customerRepo, evaluator, invalidator, policy, log)
	sortUC := analyticsusecases.NewSortAnalysisUseCase(shipmentRepo, log)
	detailUC := analyticsusecases.NewDetailAnalysisUseCase(shipmentRepo, log)
	ingestUC := ingestusecases.NewIngestShipmentsUseCase(
		shipmentRepo,
		cfg.Ingest.BatchSize,
		time.Duration(cfg.Ingest.BatchPauseMS)*time.Millisecond,
		log,
	)

	registerUC := userusecases.NewRegisterCustomerUseCase(customerRepo, hasher, log)
	loginCustomerUC := userusecases.NewLoginCustomerUseCase(customerRepo, hasher, jwtService, log)
	loginAdminUC := userusecases.NewLoginAdminUseCase(adminRepo, hasher, jwtService, log)
	refreshUC := userusecases.NewRefreshTokenUseCase(jwtService, log)
	profileUC := userusecases.NewGetProfileUseCase(customerRepo, log)
	changePasswordUC := userusecases.NewChangePasswordUseCase(customerRepo, hasher, log)
	renewUC := userusecases.NewRenewSubscriptionUseCase(customerRepo, invalidator, log)

	// Interface
	authMW := middleware.NewAuthMiddleware(jwtService, log)
	loader := middleware.NewCustomerLoader(customerRepo, customerCache, log)

	searchHandler := handlers.NewSearchHandler(searchUC, downloadUC, evaluator, log)
	analyticsHandler := handlers.NewAnalyticsHandler(sortUC, detailUC, evaluator, log)
	authHandler := handlers.NewAuthHandler(
		registerUC, loginCustomerUC, loginAdminUC, refreshUC, profileUC, changePasswordUC, log)
	adminHandler := handlers.NewAdminHandler(renewUC, ingestUC, reader, log)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler:    authHandler,
		AuthMiddleware: authMW,
	})
	routes.SetupSearchRoutes(engine, &routes.SearchRouteConfig{
		SearchHandler:    searchHandler,
		AnalyticsHandler: analyticsHandler,
		AuthMiddleware:   authMW,
		CustomerLoader:   loader,
	})
	routes.SetupAdminRoutes(engine, &routes.AdminRouteConfig{
		AdminHandler:   adminHandler,
		AuthMiddleware: authMW,
	})

	return &Router{
		engine: engine,
		cfg:    cfg,
		logger: log,
	}
}

// Engine exposes the underlying gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server on the configured address.
func (r *Router) Run() error {
	addr := r.cfg.Server.GetAddr()
	r.logger.Infow("starting HTTP server", "addr", addr)
	return r.engine.Run(addr)
}

func ginMode(mode string) string {
	switch mode {
	case gin.ReleaseMode, gin.TestMode:
		return mode
	default:
		return gin.DebugMode
	}
}
