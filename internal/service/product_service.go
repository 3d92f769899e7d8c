package service

import (
	"errors"
	"fmt"
	"strings"

	"storefront-backend/internal/apperr"
	"storefront-backend/internal/models"
	"storefront-backend/internal/repository"
)

// ProductStore is the catalog persistence surface.
type ProductStore interface {
	List(q repository.ProductListQuery) ([]models.Product, error)
	FindByID(id uint) (*models.Product, error)
}

type ProductService struct {
	products ProductStore
}

func NewProductService(products ProductStore) *ProductService {
	return &ProductService{products: products}
}

// ProductListParams are the raw, untrusted listing parameters from the
// query string.
type ProductListParams struct {
	Search string
	Sort   string
	Page   int
	Limit  int
}

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

var sortableFields = map[string]bool{
	"name":       true,
	"price":      true,
	"created_at": true,
}

// ListProducts returns a catalog page. The sort parameter has the form
// "field:order"; fields and orders outside the whitelist fall back to
// the defaults rather than reaching the database.
func (s *ProductService) ListProducts(params ProductListParams) ([]models.Product, error) {
	sortField := "created_at"
	sortOrder := "DESC"
	if params.Sort != "" {
		field, order, _ := strings.Cut(params.Sort, ":")
		if sortableFields[field] {
			sortField = field
		}
		if strings.EqualFold(order, "asc") {
			sortOrder = "ASC"
		}
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	limit := params.Limit
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	products, err := s.products.List(repository.ProductListQuery{
		Search:    params.Search,
		SortField: sortField,
		SortOrder: sortOrder,
		Offset:    (page - 1) * limit,
		Limit:     limit,
	})
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("failed to fetch products: %w", err))
	}
	return products, nil
}

// GetProduct retrieves a single product
func (s *ProductService) GetProduct(id uint) (*models.Product, error) {
	product, err := s.products.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("product not found")
		}
		return nil, apperr.Internal(fmt.Errorf("failed to fetch product: %w", err))
	}
	return product, nil
}
