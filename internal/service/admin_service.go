package service

import (
	"errors"
	"fmt"

	"storefront-backend/internal/apperr"
	"storefront-backend/internal/models"
	"storefront-backend/internal/repository"

	"github.com/shopspring/decimal"
)

// AdminUserStore is the user surface the admin dashboard needs.
type AdminUserStore interface {
	ListAll() ([]models.User, error)
	Count() (int64, error)
}

// AdminProductStore is the product CRUD surface for administrators.
type AdminProductStore interface {
	FindByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id uint) error
	Count() (int64, error)
}

// AdminOrderStore is the cross-user order view plus the counters that
// back the stats endpoint and the deletion guard.
type AdminOrderStore interface {
	ListAll() ([]models.Order, error)
	Count() (int64, error)
	SumTotals() (decimal.Decimal, error)
	CountItemsByProductID(productID uint) (int64, error)
}

type AdminService struct {
	users    AdminUserStore
	products AdminProductStore
	orders   AdminOrderStore
	audit    AuditLogger
}

func NewAdminService(users AdminUserStore, products AdminProductStore, orders AdminOrderStore, audit AuditLogger) *AdminService {
	return &AdminService{
		users:    users,
		products: products,
		orders:   orders,
		audit:    audit,
	}
}

// Stats is the admin dashboard summary
type Stats struct {
	Users    int64           `json:"users"`
	Products int64           `json:"products"`
	Orders   int64           `json:"orders"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// GetStats returns entity counts and total revenue
func (s *AdminService) GetStats() (*Stats, error) {
	users, err := s.users.Count()
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("failed to count users: %w", err))
	}
	products, err := s.products.Count()
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("failed to count products: %w", err))
	}
	orders, err := s.orders.Count()
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("failed to count orders: %w", err))
	}
	revenue, err := s.orders.SumTotals()
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("failed to sum revenue: %w", err))
	}

	return &Stats{Users: users, Products: products, Orders: orders, Revenue: revenue}, nil
}

// ListUsers returns all user accounts, newest first
func (s *AdminService) ListUsers() ([]models.User, error) {
	users, err := s.users.ListAll()
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("failed to fetch users: %w", err))
	}
	return users, nil
}

// ProductInput is the admin create/update payload
type ProductInput struct {
	Name        string          `json:"name" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Description string          `json:"description"`
	ImageURL    string          `json:"image_url"`
}

// CreateProduct adds a catalog entry
func (s *AdminService) CreateProduct(input ProductInput, adminID uint) (*models.Product, error) {
	if input.Price.IsNegative() || input.Price.IsZero() {
		return nil, apperr.Validation("product price must be positive")
	}

	product := &models.Product{
		Name:        input.Name,
		Price:       input.Price.Round(2),
		Description: input.Description,
		ImageURL:    input.ImageURL,
	}
	if err := s.products.Create(product); err != nil {
		return nil, apperr.Internal(fmt.Errorf("failed to create product: %w", err))
	}

	_ = s.audit.CreateAuditLog(&adminID, "product_create", fmt.Sprintf("Created product %s (ID: %d)", product.Name, product.ID))

	return product, nil
}

// UpdateProduct edits an existing catalog entry. Existing order items
// keep their snapshotted prices regardless.
func (s *AdminService) UpdateProduct(id uint, input ProductInput, adminID uint) (*models.Product, error) {
	if input.Price.IsNegative() || input.Price.IsZero() {
		return nil, apperr.Validation("product price must be positive")
	}

	product, err := s.products.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("product not found")
		}
		return nil, apperr.Internal(fmt.Errorf("failed to fetch product: %w", err))
	}

	product.Name = input.Name
	product.Price = input.Price.Round(2)
	product.Description = input.Description
	product.ImageURL = input.ImageURL

	if err := s.products.Update(product); err != nil {
		return nil, apperr.Internal(fmt.Errorf("failed to update product: %w", err))
	}

	_ = s.audit.CreateAuditLog(&adminID, "product_update", fmt.Sprintf("Updated product %s (ID: %d)", product.Name, product.ID))

	return product, nil
}

// DeleteProduct removes a catalog entry unless any order item still
// references it; historical orders must keep resolvable products.
func (s *AdminService) DeleteProduct(id uint, adminID uint) error {
	product, err := s.products.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("product not found")
		}
		return apperr.Internal(fmt.Errorf("failed to fetch product: %w", err))
	}

	referenced, err := s.orders.CountItemsByProductID(id)
	if err != nil {
		return apperr.Internal(fmt.Errorf("failed to check product references: %w", err))
	}
	if referenced > 0 {
		return apperr.Integrity("cannot delete a product that has been ordered")
	}

	if err := s.products.Delete(id); err != nil {
		return apperr.Internal(fmt.Errorf("failed to delete product: %w", err))
	}

	_ = s.audit.CreateAuditLog(&adminID, "product_delete", fmt.Sprintf("Deleted product %s (ID: %d)", product.Name, id))

	return nil
}

// ListAllOrders returns every order with owner and items (admin view)
func (s *AdminService) ListAllOrders() ([]models.Order, error) {
	orders, err := s.orders.ListAll()
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("failed to fetch orders: %w", err))
	}
	return orders, nil
}
