package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agrimach/internal/models"
)

// RegionDirectory is the hierarchy provider behind the delivery address
// pickers.
type RegionDirectory interface {
	ListProvinces() ([]*models.Province, error)
	ListRegencies(provinceID string) ([]*models.Regency, error)
	ListDistricts(regencyID string) ([]*models.District, error)
	ListVillages(districtID string) ([]*models.Village, error)
}

type RegionHandler struct {
	Directory RegionDirectory
}

func NewRegionHandler(directory RegionDirectory) *RegionHandler {
	return &RegionHandler{Directory: directory}
}

// @Summary      List provinces
// @Tags         Regions
// @Produce      json
// @Success      200  {array}  models.Province
// @Router       /regions/provinces [get]
func (h *RegionHandler) ListProvinces(c *gin.Context) {
	items, err := h.Directory.ListProvinces()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary      List regencies of a province
// @Tags         Regions
// @Produce      json
// @Param        id   path     string  true  "Province id"
// @Success      200  {array}  models.Regency
// @Router       /regions/provinces/{id}/regencies [get]
func (h *RegionHandler) ListRegencies(c *gin.Context) {
	items, err := h.Directory.ListRegencies(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary      List districts of a regency
// @Tags         Regions
// @Produce      json
// @Param        id   path     string  true  "Regency id"
// @Success      200  {array}  models.District
// @Router       /regions/regencies/{id}/districts [get]
func (h *RegionHandler) ListDistricts(c *gin.Context) {
	items, err := h.Directory.ListDistricts(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary      List villages of a district
// @Tags         Regions
// @Produce      json
// @Param        id   path     string  true  "District id"
// @Success      200  {array}  models.Village
// @Router       /regions/districts/{id}/villages [get]
func (h *RegionHandler) ListVillages(c *gin.Context) {
	items, err := h.Directory.ListVillages(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}
