package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agrimach/internal/models"
	"agrimach/internal/services"
)

type ForecastHandler struct {
	Service *services.ForecastService
}

func NewForecastHandler(service *services.ForecastService) *ForecastHandler {
	return &ForecastHandler{Service: service}
}

// @Summary      Revenue forecast
// @Description  Conservative, weighted and optimistic scenarios plus a per-stage breakdown over the filtered deal set
// @Tags         Reports
// @Produce      json
// @Param        category   query     string  false  "Product category filter"
// @Param        region_id  query     string  false  "Region filter"
// @Success      200        {object}  models.Forecast
// @Router       /reports/forecast [get]
func (h *ForecastHandler) Get(c *gin.Context) {
	filter := models.DealFilter{
		Category: models.ProductCategory(c.Query("category")),
		RegionID: c.Query("region_id"),
	}

	forecast, err := h.Service.Forecast(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, forecast)
}

// @Summary      Forecast PDF report
// @Description  Renders the current forecast as a printable PDF and serves the file
// @Tags         Reports
// @Produce      application/pdf
// @Param        category   query  string  false  "Product category filter"
// @Param        region_id  query  string  false  "Region filter"
// @Success      200  {file}    file
// @Failure      500  {object}  map[string]string
// @Router       /reports/forecast/pdf [get]
func (h *ForecastHandler) DownloadPDF(c *gin.Context) {
	filter := models.DealFilter{
		Category: models.ProductCategory(c.Query("category")),
		RegionID: c.Query("region_id"),
	}

	path, err := h.Service.GenerateReport(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.FileAttachment(path, "forecast.pdf")
}
