package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medpipeline/internal/adapter/http/handlers"
)

const (
	PathRecords  = "/records"
	PathForecast = "/forecast"
	PathProducts = "/products"
	PathProfile  = "/profile"
	PathAuth     = "/auth"
)

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", authHandler.Login)
	}
}

func addPipelineRoutes(
	rg *gin.RouterGroup,
	pipelineHandler *handlers.PipelineHandler,
	forecastHandler *handlers.ForecastHandler,
	productHandler *handlers.ProductHandler,
	authHandler *handlers.AuthHandler,
) {
	records := rg.Group(PathRecords)
	{
		records.GET("", pipelineHandler.ListRecords)
		records.POST("", pipelineHandler.CreateRecord)
		records.POST("/refresh", pipelineHandler.RefreshRecords)
		records.GET("/export", pipelineHandler.ExportRecords)
		records.GET("/:id", pipelineHandler.GetRecord)
		records.PATCH("/:id", pipelineHandler.UpdateRecord)
		records.DELETE("/:id", pipelineHandler.DeleteRecord)
	}

	forecast := rg.Group(PathForecast)
	{
		forecast.GET("/monthly", forecastHandler.MonthlyForecast)
		forecast.GET("/quarterly", forecastHandler.QuarterlyForecast)
		forecast.GET("/annual", forecastHandler.AnnualForecast)
		forecast.GET("/products", forecastHandler.ProductForecasts)
	}

	rg.GET("/dashboard", forecastHandler.Dashboard)
	rg.GET("/stages", forecastHandler.Stages)

	products := rg.Group(PathProducts)
	{
		products.GET("", productHandler.ListProducts)
		products.POST("", productHandler.AddProduct)
	}

	profile := rg.Group(PathProfile)
	{
		profile.GET("", authHandler.GetProfile)
		profile.PATCH("", authHandler.UpdateProfile)
	}
}

func addPingRoutes(router *gin.Engine) {
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
