package handler

import (
	"net/http"
	"strconv"

	"storefront-backend/internal/apperr"
	"storefront-backend/internal/middleware"
	"storefront-backend/internal/service"
	"storefront-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService *service.OrderService
}

func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

type CreateOrderRequest struct {
	Items []service.OrderItemInput `json:"items" binding:"required,min=1,dive"`
}

// Create places an order from the submitted line items
func (h *OrderHandler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, apperr.Validation("order must contain at least one item with a positive quantity"))
		return
	}

	order, err := h.orderService.PlaceOrder(middleware.UserID(c), req.Items)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "order created",
		"orderId": order.ID,
	})
}

// List returns the caller's orders with their items
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orderService.ListOrders(middleware.UserID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// Get returns one of the caller's orders
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.HandleError(c, apperr.Validation("invalid order ID"))
		return
	}

	order, err := h.orderService.GetOrder(uint(id), middleware.UserID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}
