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

type AdminHandler struct {
	adminService *service.AdminService
}

func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

// Stats returns dashboard counters and total revenue
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.adminService.GetStats()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// ListUsers returns all user accounts
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminService.ListUsers()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// CreateProduct adds a catalog entry
func (h *AdminHandler) CreateProduct(c *gin.Context) {
	var input service.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.HandleError(c, apperr.Validation("product name and price are required"))
		return
	}

	product, err := h.adminService.CreateProduct(input, middleware.UserID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

// UpdateProduct edits an existing catalog entry
func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.HandleError(c, apperr.Validation("invalid product ID"))
		return
	}

	var input service.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.HandleError(c, apperr.Validation("product name and price are required"))
		return
	}

	product, err := h.adminService.UpdateProduct(uint(id), input, middleware.UserID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct removes a catalog entry unless an order references it
func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.HandleError(c, apperr.Validation("invalid product ID"))
		return
	}

	if err := h.adminService.DeleteProduct(uint(id), middleware.UserID(c)); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.MessageResponse(c, "product deleted")
}

// ListOrders returns every order with owner and items
func (h *AdminHandler) ListOrders(c *gin.Context) {
	orders, err := h.adminService.ListAllOrders()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}
