package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agrimach/internal/models"
	"agrimach/internal/services"
)

type DealHandler struct {
	Service *services.DealService
}

func NewDealHandler(service *services.DealService) *DealHandler {
	return &DealHandler{Service: service}
}

// @Summary      Create a deal
// @Description  Registers a new sales opportunity, defaulting to the INQUIRY stage
// @Tags         Deals
// @Accept       json
// @Produce      json
// @Param        deal  body      models.DealSpec  true  "Deal to create"
// @Success      201   {object}  models.Deal
// @Failure      400   {object}  map[string]string
// @Router       /deals [post]
func (h *DealHandler) Create(c *gin.Context) {
	var spec models.DealSpec
	if err := c.ShouldBindJSON(&spec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deal, err := h.Service.Create(&spec)
	if err != nil {
		writePipelineError(c, err)
		return
	}
	c.JSON(http.StatusCreated, deal)
}

// @Summary      Get a deal
// @Tags         Deals
// @Produce      json
// @Param        id   path      string  true  "Deal id"
// @Success      200  {object}  models.Deal
// @Failure      404  {object}  map[string]string
// @Router       /deals/{id} [get]
func (h *DealHandler) GetByID(c *gin.Context) {
	deal, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		writePipelineError(c, err)
		return
	}
	c.JSON(http.StatusOK, deal)
}

type advanceDealRequest struct {
	To      models.StageID `json:"to" binding:"required"`
	Payload map[string]any `json:"payload"`
}

// @Summary      Advance a deal to another stage
// @Description  Validates the payload against the target stage's required fields and commits the transition atomically. Moving back to INQUIRY needs no payload.
// @Tags         Deals
// @Accept       json
// @Produce      json
// @Param        id       path      string              true  "Deal id"
// @Param        request  body      advanceDealRequest  true  "Target stage and captured data"
// @Success      200      {object}  models.Deal
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Failure      422      {object}  models.ValidationError
// @Router       /deals/{id}/stage [post]
func (h *DealHandler) AdvanceStage(c *gin.Context) {
	var req advanceDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deal, err := h.Service.AdvanceStage(c.Param("id"), req.To, req.Payload)
	if err != nil {
		writePipelineError(c, err)
		return
	}
	c.JSON(http.StatusOK, deal)
}

// @Summary      List deals
// @Description  Returns deals in creation order, optionally narrowed by product category and customer region
// @Tags         Deals
// @Produce      json
// @Param        category   query     string  false  "Product category filter"
// @Param        region_id  query     string  false  "Region filter"
// @Success      200        {array}   models.Deal
// @Router       /deals [get]
func (h *DealHandler) List(c *gin.Context) {
	filter := models.DealFilter{
		Category: models.ProductCategory(c.Query("category")),
		RegionID: c.Query("region_id"),
	}

	deals, err := h.Service.List(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to retrieve deals",
			"debug": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, deals)
}
