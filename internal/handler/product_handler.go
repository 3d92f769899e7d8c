package handler

import (
	"net/http"
	"strconv"

	"storefront-backend/internal/apperr"
	"storefront-backend/internal/service"
	"storefront-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	productService *service.ProductService
}

func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// List returns a catalog page. Query parameters: search, sort
// ("field:order"), page, limit.
func (h *ProductHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	products, err := h.productService.ListProducts(service.ProductListParams{
		Search: c.Query("search"),
		Sort:   c.Query("sort"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// Get returns a single product
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.HandleError(c, apperr.Validation("invalid product ID"))
		return
	}

	product, err := h.productService.GetProduct(uint(id))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}
