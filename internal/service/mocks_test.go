package service

import (
	"errors"
	"time"

	"storefront-backend/internal/models"
	"storefront-backend/internal/repository"

	"github.com/shopspring/decimal"
)

// Hand-written mocks in the func-field style: a nil field means "not
// expected to be called" and fails loudly via the default error.

type mockUserStore struct {
	findByUsernameFunc func(username string) (*models.User, error)
	findByIDFunc       func(id uint) (*models.User, error)
	createFunc         func(user *models.User) error
	listAllFunc        func() ([]models.User, error)
	countFunc          func() (int64, error)
}

func (m *mockUserStore) FindByUsername(username string) (*models.User, error) {
	if m.findByUsernameFunc != nil {
		return m.findByUsernameFunc(username)
	}
	return nil, errors.New("unexpected call to FindByUsername")
}

func (m *mockUserStore) FindByID(id uint) (*models.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(id)
	}
	return nil, errors.New("unexpected call to FindByID")
}

func (m *mockUserStore) Create(user *models.User) error {
	if m.createFunc != nil {
		return m.createFunc(user)
	}
	return errors.New("unexpected call to Create")
}

func (m *mockUserStore) ListAll() ([]models.User, error) {
	if m.listAllFunc != nil {
		return m.listAllFunc()
	}
	return nil, errors.New("unexpected call to ListAll")
}

func (m *mockUserStore) Count() (int64, error) {
	if m.countFunc != nil {
		return m.countFunc()
	}
	return 0, errors.New("unexpected call to Count")
}

type mockAuditLogger struct {
	entries []string
}

func (m *mockAuditLogger) CreateAuditLog(userID *uint, action string, details string) error {
	m.entries = append(m.entries, action)
	return nil
}

func (m *mockAuditLogger) DeleteOlderThan(cutoff time.Time) (int64, error) {
	return 0, nil
}

type mockProductStore struct {
	listFunc      func(q repository.ProductListQuery) ([]models.Product, error)
	findByIDFunc  func(id uint) (*models.Product, error)
	findByIDsFunc func(ids []uint) ([]models.Product, error)
	createFunc    func(product *models.Product) error
	updateFunc    func(product *models.Product) error
	deleteFunc    func(id uint) error
	countFunc     func() (int64, error)
}

func (m *mockProductStore) List(q repository.ProductListQuery) ([]models.Product, error) {
	if m.listFunc != nil {
		return m.listFunc(q)
	}
	return nil, errors.New("unexpected call to List")
}

func (m *mockProductStore) FindByID(id uint) (*models.Product, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(id)
	}
	return nil, errors.New("unexpected call to FindByID")
}

func (m *mockProductStore) FindByIDs(ids []uint) ([]models.Product, error) {
	if m.findByIDsFunc != nil {
		return m.findByIDsFunc(ids)
	}
	return nil, errors.New("unexpected call to FindByIDs")
}

func (m *mockProductStore) Create(product *models.Product) error {
	if m.createFunc != nil {
		return m.createFunc(product)
	}
	return errors.New("unexpected call to Create")
}

func (m *mockProductStore) Update(product *models.Product) error {
	if m.updateFunc != nil {
		return m.updateFunc(product)
	}
	return errors.New("unexpected call to Update")
}

func (m *mockProductStore) Delete(id uint) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(id)
	}
	return errors.New("unexpected call to Delete")
}

func (m *mockProductStore) Count() (int64, error) {
	if m.countFunc != nil {
		return m.countFunc()
	}
	return 0, errors.New("unexpected call to Count")
}

type mockOrderStore struct {
	createWithItemsFunc       func(order *models.Order, items []models.OrderItem) error
	listByUserIDFunc          func(userID uint) ([]models.Order, error)
	findByIDAndUserIDFunc     func(id, userID uint) (*models.Order, error)
	listAllFunc               func() ([]models.Order, error)
	countFunc                 func() (int64, error)
	sumTotalsFunc             func() (decimal.Decimal, error)
	countItemsByProductIDFunc func(productID uint) (int64, error)
}

func (m *mockOrderStore) CreateWithItems(order *models.Order, items []models.OrderItem) error {
	if m.createWithItemsFunc != nil {
		return m.createWithItemsFunc(order, items)
	}
	return errors.New("unexpected call to CreateWithItems")
}

func (m *mockOrderStore) ListByUserID(userID uint) ([]models.Order, error) {
	if m.listByUserIDFunc != nil {
		return m.listByUserIDFunc(userID)
	}
	return nil, errors.New("unexpected call to ListByUserID")
}

func (m *mockOrderStore) FindByIDAndUserID(id, userID uint) (*models.Order, error) {
	if m.findByIDAndUserIDFunc != nil {
		return m.findByIDAndUserIDFunc(id, userID)
	}
	return nil, errors.New("unexpected call to FindByIDAndUserID")
}

func (m *mockOrderStore) ListAll() ([]models.Order, error) {
	if m.listAllFunc != nil {
		return m.listAllFunc()
	}
	return nil, errors.New("unexpected call to ListAll")
}

func (m *mockOrderStore) Count() (int64, error) {
	if m.countFunc != nil {
		return m.countFunc()
	}
	return 0, errors.New("unexpected call to Count")
}

func (m *mockOrderStore) SumTotals() (decimal.Decimal, error) {
	if m.sumTotalsFunc != nil {
		return m.sumTotalsFunc()
	}
	return decimal.Zero, errors.New("unexpected call to SumTotals")
}

func (m *mockOrderStore) CountItemsByProductID(productID uint) (int64, error) {
	if m.countItemsByProductIDFunc != nil {
		return m.countItemsByProductIDFunc(productID)
	}
	return 0, errors.New("unexpected call to CountItemsByProductID")
}
