package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"agrimach/internal/models"
)

// writePipelineError maps pipeline errors to HTTP responses. Validation
// failures are routine user-correctable outcomes and carry the full field
// list; the rest signal caller misuse.
func writePipelineError(c *gin.Context, err error) {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "validation failed",
			"stage":  validationErr.Stage,
			"fields": validationErr.Fields,
		})
		return
	}

	var stageErr *models.InvalidStageError
	if errors.As(err, &stageErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": stageErr.Error()})
		return
	}

	var specErr *models.InvalidDealSpecError
	if errors.As(err, &specErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": specErr.Error()})
		return
	}

	if errors.Is(err, models.ErrDealNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "deal not found"})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
