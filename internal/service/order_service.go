package service

import (
	"errors"
	"fmt"

	"storefront-backend/internal/apperr"
	"storefront-backend/internal/models"
	"storefront-backend/internal/repository"

	"github.com/shopspring/decimal"
)

// ProductFinder resolves products for order placement.
type ProductFinder interface {
	FindByIDs(ids []uint) ([]models.Product, error)
}

// OrderStore is the order persistence surface.
type OrderStore interface {
	CreateWithItems(order *models.Order, items []models.OrderItem) error
	ListByUserID(userID uint) ([]models.Order, error)
	FindByIDAndUserID(id, userID uint) (*models.Order, error)
}

type OrderService struct {
	orders   OrderStore
	products ProductFinder
	audit    AuditLogger
}

func NewOrderService(orders OrderStore, products ProductFinder, audit AuditLogger) *OrderService {
	return &OrderService{
		orders:   orders,
		products: products,
		audit:    audit,
	}
}

// OrderItemInput is one requested line item. Prices are never accepted
// from the client; only the product reference and quantity are.
type OrderItemInput struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// PlaceOrder converts the requested line items into a persisted order.
// All product ids are resolved in one batch; any unknown id aborts the
// whole operation before anything is written. Line prices are snapshots
// of the current product prices, and the order plus its items commit as
// a single transaction.
func (s *OrderService) PlaceOrder(userID uint, items []OrderItemInput) (*models.Order, error) {
	if len(items) == 0 {
		return nil, apperr.Validation("order must contain at least one item")
	}

	productIDs := make([]uint, 0, len(items))
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, apperr.Validation("item quantity must be at least 1")
		}
		productIDs = append(productIDs, item.ProductID)
	}

	products, err := s.products.FindByIDs(productIDs)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("failed to resolve products: %w", err))
	}

	productMap := make(map[uint]models.Product, len(products))
	for _, product := range products {
		productMap[product.ID] = product
	}

	total := decimal.Zero
	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		product, ok := productMap[item.ProductID]
		if !ok {
			return nil, apperr.NotFound(fmt.Sprintf("product %d not found", item.ProductID))
		}

		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(lineTotal)

		orderItems = append(orderItems, models.OrderItem{
			ProductID: product.ID,
			Quantity:  item.Quantity,
			Price:     product.Price,
		})
	}

	order := &models.Order{
		UserID: userID,
		Total:  total.Round(2),
	}
	if err := s.orders.CreateWithItems(order, orderItems); err != nil {
		return nil, apperr.Internal(fmt.Errorf("failed to persist order: %w", err))
	}

	_ = s.audit.CreateAuditLog(&userID, "order_placed",
		fmt.Sprintf("Order %d placed with %d items, total %s", order.ID, len(orderItems), order.Total))

	return order, nil
}

// ListOrders returns the caller's orders with items
func (s *OrderService) ListOrders(userID uint) ([]models.Order, error) {
	orders, err := s.orders.ListByUserID(userID)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("failed to fetch orders: %w", err))
	}
	return orders, nil
}

// GetOrder returns one of the caller's orders; other users' orders are
// indistinguishable from absent ones
func (s *OrderService) GetOrder(id, userID uint) (*models.Order, error) {
	order, err := s.orders.FindByIDAndUserID(id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, apperr.Internal(fmt.Errorf("failed to fetch order: %w", err))
	}
	return order, nil
}
