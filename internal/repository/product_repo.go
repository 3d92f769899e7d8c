package repository

import (
	"errors"

	"storefront-backend/internal/models"

	"gorm.io/gorm"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// ProductListQuery describes the catalog listing parameters. SortField
// and SortOrder must already be whitelisted by the caller.
type ProductListQuery struct {
	Search    string
	SortField string
	SortOrder string
	Offset    int
	Limit     int
}

// List returns a page of products matching the query
func (r *ProductRepository) List(q ProductListQuery) ([]models.Product, error) {
	var products []models.Product

	tx := r.db.Model(&models.Product{})
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		tx = tx.Where("name LIKE ? OR description LIKE ?", pattern, pattern)
	}

	err := tx.Order(q.SortField + " " + q.SortOrder).
		Offset(q.Offset).
		Limit(q.Limit).
		Find(&products).Error
	return products, err
}

// FindByID retrieves a product by ID
func (r *ProductRepository) FindByID(id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindByIDs retrieves all products matching the given ids in one query
func (r *ProductRepository) FindByIDs(ids []uint) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("id IN ?", ids).Find(&products).Error
	return products, err
}

// Create creates a new product
func (r *ProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// Update updates an existing product
func (r *ProductRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

// Delete removes a product row
func (r *ProductRepository) Delete(id uint) error {
	return r.db.Delete(&models.Product{}, id).Error
}

// Count returns the total number of products
func (r *ProductRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Product{}).Count(&count).Error
	return count, err
}
