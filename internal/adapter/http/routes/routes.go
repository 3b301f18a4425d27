package routes

import (
	"context"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "medpipeline/docs" // generated swagger docs
	"medpipeline/internal/adapter/http/handlers"
	"medpipeline/internal/adapter/http/middleware"
	repository2 "medpipeline/internal/adapter/persistence/repository"
	"medpipeline/internal/config"
	"medpipeline/internal/infrastructure/cache"
	"medpipeline/internal/infrastructure/sheetdb"
	"medpipeline/internal/usecase"
	"medpipeline/internal/usecase/interfaces"
)

// Run wires the whole application and starts the server.
func Run(cfg *config.Config, logger *zap.Logger) {
	gin.SetMode(cfg.Server.Mode)
	router := gin.New()

	setMiddlewares(router, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(router, cfg, logger)

	if err := router.Run(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(router *gin.Engine, cfg *config.Config, logger *zap.Logger) {
	client := sheetdb.NewClient(cfg.SheetDB.Timeout)

	recordRepo := repository2.NewOpportunitySheetRepository(client, cfg.SheetDB.RecordsURL)
	productRepo := repository2.NewProductSheetRepository(client, cfg.SheetDB.ProductsURL)
	userRepo := repository2.NewUserSheetRepository(client, cfg.SheetDB.UsersURL)

	pipelineUseCase := usecase.NewPipelineUseCase(recordRepo, logger)
	forecastUseCase := usecase.NewForecastUseCase(pipelineUseCase)
	productUseCase := usecase.NewProductUseCase(productRepo, catalogCache(cfg, logger), logger)
	authUseCase := usecase.NewAuthUseCase(userRepo, cfg.JWT)

	// Initial snapshot load; a failure falls back to sample data and the
	// dashboard stays usable.
	if err := pipelineUseCase.Refresh(context.Background()); err != nil {
		logger.Warn("initial record load failed", zap.Error(err))
	}

	pipelineHandler := handlers.NewPipelineHandler(pipelineUseCase)
	forecastHandler := handlers.NewForecastHandler(forecastUseCase)
	productHandler := handlers.NewProductHandler(productUseCase)
	authHandler := handlers.NewAuthHandler(authUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(router)
	addAuthRoutes(v1, authHandler)

	protected := v1.Group("")
	protected.Use(middleware.JWTAuth(cfg.JWT.Secret))
	addPipelineRoutes(protected, pipelineHandler, forecastHandler, productHandler, authHandler)
}

// catalogCache returns a nil interface when Redis is not configured or
// unreachable; the product use case then skips the cache tier.
func catalogCache(cfg *config.Config, logger *zap.Logger) interfaces.IProductCache {
	c := cache.NewProductCatalogCache(cfg.Redis)
	if c == nil {
		return nil
	}
	if err := c.Ping(context.Background()); err != nil {
		logger.Warn("redis unreachable, catalog cache disabled", zap.Error(err))
		return nil
	}
	return c
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("Recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}
