package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agrimach/internal/models"
	"agrimach/internal/services"
)

// StageHandler exposes the pipeline catalog to form-rendering clients.
type StageHandler struct{}

func NewStageHandler() *StageHandler {
	return &StageHandler{}
}

// @Summary      List pipeline stages
// @Description  Returns the six stages in pipeline order with default probabilities and required fields
// @Tags         Stages
// @Produce      json
// @Success      200  {array}  models.Stage
// @Router       /stages [get]
func (h *StageHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, services.AllStages())
}

// @Summary      Required fields for a stage
// @Description  Returns the ordered field descriptors a transition into the stage must supply; clients render these as the transition form
// @Tags         Stages
// @Produce      json
// @Param        id   path      string  true  "Stage id"
// @Success      200  {array}   models.FieldDescriptor
// @Failure      400  {object}  map[string]string
// @Router       /stages/{id}/fields [get]
func (h *StageHandler) RequiredFields(c *gin.Context) {
	fields, err := services.RequiredFields(models.StageID(c.Param("id")))
	if err != nil {
		writePipelineError(c, err)
		return
	}
	if fields == nil {
		fields = []models.FieldDescriptor{}
	}
	c.JSON(http.StatusOK, fields)
}
