package domain

import (
	"context"
	"errors"
	"time"

	productdomain "github.com/tair/shop-backoffice/internal/product/domain"
)

// ErrNotFound is returned when an inventory id does not resolve to a row
var ErrNotFound = errors.New("inventory item not found")

// DefaultMinStockLevel is applied when a record is created without an
// explicit reorder threshold.
const DefaultMinStockLevel = 10

// Inventory is the quantity-of-record for a product. Every product owns
// exactly one inventory row; Product.StockQuantity mirrors StockQuantity here.
type Inventory struct {
	ID            uint                  `json:"id" gorm:"primaryKey"`
	ProductID     uint                  `json:"product_id" gorm:"not null;uniqueIndex"`
	Product       productdomain.Product `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	StockQuantity int                   `json:"stock_quantity" gorm:"not null;default:0"`
	MinStockLevel int                   `json:"min_stock_level" gorm:"not null;default:10"`
	LastUpdated   time.Time             `json:"last_updated"`
}

// TableName specifies the table name
func (Inventory) TableName() string {
	return "inventory"
}

// IsLowStock reports whether the quantity has reached the reorder threshold
func (i *Inventory) IsLowStock() bool {
	return i.StockQuantity <= i.MinStockLevel
}

// InventoryItem is an inventory row denormalized with the owning product's
// name, as returned by list queries for display.
type InventoryItem struct {
	Inventory
	ProductName string `json:"product_name"`
}

// InventoryRepository defines the contract for inventory data access
type InventoryRepository interface {
	// Upsert overwrites the quantity for product's row, creating the row if
	// none exists yet. A nil minStockLevel preserves the stored threshold
	// (or the default on create). Does not touch the product mirror.
	Upsert(ctx context.Context, productID uint, stockQuantity int, minStockLevel *int) (*Inventory, error)
	FindByID(ctx context.Context, id uint) (*Inventory, error)
	FindByProductID(ctx context.Context, productID uint) (*Inventory, error)
	FindAll(ctx context.Context) ([]InventoryItem, error)
	// UpdateAndSync merges the supplied fields into the row (nil preserves
	// the stored value) and, when stockQuantity is supplied, propagates the
	// new ledger value to the product mirror in the same transaction.
	// Returns ErrNotFound when id is unknown.
	UpdateAndSync(ctx context.Context, id uint, stockQuantity, minStockLevel *int) (*Inventory, error)
	Delete(ctx context.Context, id uint) error
}
