package routes

import (
	"github.com/gin-gonic/gin"

	"agrimach/internal/handlers"
)

func SetupRoutes(
	r *gin.Engine,
	dealHandler *handlers.DealHandler,
	stageHandler *handlers.StageHandler,
	forecastHandler *handlers.ForecastHandler,
	regionHandler *handlers.RegionHandler,
	productHandler *handlers.ProductHandler,
) *gin.Engine {

	// DEALS
	deals := r.Group("/deals")
	{
		deals.POST("/", dealHandler.Create)
		deals.GET("/", dealHandler.List)
		deals.GET("/:id", dealHandler.GetByID)
		deals.POST("/:id/stage", dealHandler.AdvanceStage)
	}

	// STAGES (pipeline catalog, read-only)
	stages := r.Group("/stages")
	{
		stages.GET("/", stageHandler.List)
		stages.GET("/:id/fields", stageHandler.RequiredFields)
	}

	// REPORTS
	reports := r.Group("/reports")
	{
		reports.GET("/forecast", forecastHandler.Get)
		reports.GET("/forecast/pdf", forecastHandler.DownloadPDF)
	}

	// REGIONS (picker reference data)
	regions := r.Group("/regions")
	{
		regions.GET("/provinces", regionHandler.ListProvinces)
		regions.GET("/provinces/:id/regencies", regionHandler.ListRegencies)
		regions.GET("/regencies/:id/districts", regionHandler.ListDistricts)
		regions.GET("/districts/:id/villages", regionHandler.ListVillages)
	}

	// PRODUCTS
	r.GET("/products", productHandler.List)

	return r
}
