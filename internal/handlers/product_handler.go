package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agrimach/internal/models"
)

// ProductCatalog lists the machinery catalog for deal-entry forms.
type ProductCatalog interface {
	List() ([]*models.Product, error)
}

type ProductHandler struct {
	Catalog ProductCatalog
}

func NewProductHandler(catalog ProductCatalog) *ProductHandler {
	return &ProductHandler{Catalog: catalog}
}

// @Summary      List products
// @Tags         Products
// @Produce      json
// @Success      200  {array}  models.Product
// @Router       /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.Catalog.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, products)
}
