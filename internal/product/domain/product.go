package domain

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a product id does not resolve to a row
var ErrNotFound = errors.New("product not found")

// Product represents the product entity. StockQuantity is a cached mirror of
// the inventory ledger; the inventory row holds the authoritative value.
type Product struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"not null"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Price         float64   `json:"price" gorm:"not null"`
	Image         string    `json:"image"`
	StockQuantity int       `json:"stock_quantity" gorm:"not null;default:0"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// ProductRepository defines the contract for product data access.
// Multi-row operations (create with its inventory row, update with mirror
// propagation) are atomic: either every row is written or none is.
type ProductRepository interface {
	// Create inserts the product and provisions its paired inventory row
	// with the same stock quantity in one transaction.
	Create(ctx context.Context, product *Product, minStockLevel int) error
	FindByID(ctx context.Context, id uint) (*Product, error)
	// FindAll returns all products newest first.
	FindAll(ctx context.Context) ([]Product, error)
	// Update persists the product; when syncInventory is set the inventory
	// ledger for the product is overwritten with product.StockQuantity in
	// the same transaction.
	Update(ctx context.Context, product *Product, syncInventory bool) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}
