package controllers

import (
	"strconv"

	"storefront/models"
	"storefront/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	carts *services.CartService
}

func NewCartController() *CartController {
	return &CartController{carts: services.NewCartService()}
}

// GetCart godoc
// @Summary View cart
// @Description Current cart items with a freshly computed total; explicit empty state when there is no cart yet
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 403 {object} models.ErrorResponse
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	userID := c.GetInt("user_id")

	view, err := ctrl.carts.View(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Cart retrieved successfully"
	if view.Empty {
		message = "Your cart is empty!"
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: message,
		Data:    view,
	})
}

// AddCartItem godoc
// @Summary Add product to cart
// @Description Creates the cart lazily; repeat adds of the same product increment quantity by one
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Add Request"
// @Success 201 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddCartItem(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, models.ErrValidationFailed)
		return
	}

	item, err := ctrl.carts.AddItem(c.Request.Context(), userID, req.ProductID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(201, models.Response{
		Success: true,
		Message: "Item added to cart",
		Data:    item,
	})
}

// RemoveCartItem godoc
// @Summary Remove cart item
// @Description Deletes a line from the caller's own cart; foreign item ids read as 404
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param id path int true "Cart item ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items/{id} [delete]
func (ctrl *CartController) RemoveCartItem(c *gin.Context) {
	userID := c.GetInt("user_id")

	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil || itemID <= 0 {
		respondError(c, models.ErrNotFound)
		return
	}

	if err := ctrl.carts.RemoveItem(c.Request.Context(), userID, itemID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Item removed from cart",
	})
}
