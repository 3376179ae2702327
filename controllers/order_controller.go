package controllers

import (
	"strconv"

	"storefront/models"
	"storefront/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	checkout *services.CheckoutService
	orders   *services.OrderService
}

func NewOrderController() *OrderController {
	return &OrderController{
		checkout: services.NewCheckoutService(),
		orders:   services.NewOrderService(),
	}
}

// Checkout godoc
// @Summary Checkout
// @Description Creates a Pending order from the current cart; the total is recomputed transactionally
// @Tags Checkout
// @Security BearerAuth
// @Produce json
// @Success 201 {object} models.Response
// @Failure 403 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /checkout [post]
func (ctrl *OrderController) Checkout(c *gin.Context) {
	userID := c.GetInt("user_id")

	summary, err := ctrl.checkout.Checkout(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(201, models.Response{
		Success: true,
		Message: "Order created successfully",
		Data:    summary,
	})
}

// GetMyOrders godoc
// @Summary Order history
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /orders [get]
func (ctrl *OrderController) GetMyOrders(c *gin.Context) {
	userID := c.GetInt("user_id")

	orders, err := ctrl.orders.ListMine(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Orders retrieved successfully",
		Data:    orders,
	})
}

// GetAllOrders godoc
// @Summary List all orders
// @Description Paginated order listing with optional status filter (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param status query string false "Filter by status"
// @Success 200 {object} models.PaginatedResponse
// @Router /admin/orders [get]
func (ctrl *OrderController) GetAllOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	status := c.Query("status")

	orders, total, err := ctrl.orders.ListAll(c.Request.Context(), status, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	c.JSON(200, models.PaginatedResponse{
		Success: true,
		Message: "Orders retrieved successfully",
		Data:    orders,
		Meta: models.PaginationMeta{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages,
		},
	})
}

// UpdateOrderStatus godoc
// @Summary Update order status
// @Description Applies a status transition; forbidden moves are rejected (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body models.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/orders/{id}/status [patch]
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondError(c, models.ErrNotFound)
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, models.ErrValidationFailed)
		return
	}

	order, err := ctrl.orders.UpdateStatus(c.Request.Context(), id, models.OrderStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Order status updated successfully",
		Data:    order,
	})
}
