package repository

import (
	"errors"

	"storefront-backend/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// CreateWithItems persists the order row and all of its item rows as a
// single transaction. A failure on any insert rolls back the whole
// order, so no partial order can ever be observed.
func (r *OrderRepository) CreateWithItems(order *models.Order, items []models.OrderItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		order.Items = items
		return nil
	})
}

// ListByUserID returns all orders for a user with their items and
// product details preloaded
func (r *OrderRepository) ListByUserID(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.Product").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// FindByIDAndUserID retrieves a single order scoped to its owner
func (r *OrderRepository) FindByIDAndUserID(id, userID uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Where("id = ? AND user_id = ?", id, userID).
		Preload("Items").
		Preload("Items.Product").
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// ListAll returns every order with owner and items preloaded, newest
// first (admin view)
func (r *OrderRepository) ListAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.
		Preload("User").
		Preload("Items").
		Preload("Items.Product").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// CountItemsByProductID returns how many order items reference a product
func (r *OrderRepository) CountItemsByProductID(productID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.OrderItem{}).Where("product_id = ?", productID).Count(&count).Error
	return count, err
}

// Count returns the total number of orders
func (r *OrderRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).Count(&count).Error
	return count, err
}

// SumTotals returns the revenue across all orders
func (r *OrderRepository) SumTotals() (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.Model(&models.Order{}).Select("SUM(total)").Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
