package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	response "medpipeline/internal/adapter/http/dto/response"
	"medpipeline/internal/usecase"
)

// ForecastHandler serves the derived views of the snapshot: period rollups,
// per-product forecasts and the dashboard bundle. These endpoints never
// fail; they are pure functions of whatever snapshot is loaded.

type ForecastHandler struct {
	usecase usecase.IForecastUseCase
}

func NewForecastHandler(uc usecase.IForecastUseCase) *ForecastHandler {
	return &ForecastHandler{usecase: uc}
}

func (h *ForecastHandler) MonthlyForecast(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Monthly(c.Request.Context()))
}

func (h *ForecastHandler) QuarterlyForecast(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Quarterly(c.Request.Context()))
}

func (h *ForecastHandler) AnnualForecast(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Annual(c.Request.Context()))
}

func (h *ForecastHandler) ProductForecasts(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Products(c.Request.Context()))
}

func (h *ForecastHandler) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Dashboard(c.Request.Context()))
}

// Stages returns the stage-to-probability table for form pre-fill.
func (h *ForecastHandler) Stages(c *gin.Context) {
	c.JSON(http.StatusOK, response.Stages())
}
