package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents the products table. Price is a fixed-point decimal;
// order items snapshot it at placement time, so editing a product never
// changes historical orders.
type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"size:255;not null" json:"name"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Description string          `gorm:"type:text" json:"description"`
	ImageURL    string          `gorm:"size:255" json:"image_url"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TableName specifies the table name for Product model
func (Product) TableName() string {
	return "products"
}
