package controllers

import (
	"strconv"

	"storefront/models"
	"storefront/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	catalog *services.CatalogService
}

func NewProductController() *ProductController {
	return &ProductController{catalog: services.NewCatalogService()}
}

// GetAllProducts godoc
// @Summary List products
// @Description Full product catalog, storage order
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.Response
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	products, err := ctrl.catalog.ListProducts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Products retrieved successfully"
	if len(products) == 0 {
		message = "No products available."
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: message,
		Data:    products,
	})
}

// GetProductByID godoc
// @Summary Product detail
// @Tags Catalog
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondError(c, models.ErrNotFound)
		return
	}

	product, err := ctrl.catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Product retrieved successfully",
		Data:    product,
	})
}
