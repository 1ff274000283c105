package domain

import (
	"context"
	"errors"
	"time"

	inventorydomain "github.com/tair/shop-backoffice/internal/inventory/domain"
	productdomain "github.com/tair/shop-backoffice/internal/product/domain"
)

// ErrNotFound is returned when an order id does not resolve to a row
var ErrNotFound = errors.New("order not found")

// Order represents a customer order against a single product
type Order struct {
	ID            uint                  `json:"id" gorm:"primaryKey"`
	CustomerName  string                `json:"customer_name" gorm:"not null"`
	CustomerEmail string                `json:"customer_email" gorm:"not null"`
	ProductID     uint                  `json:"product_id" gorm:"not null;index"`
	Product       productdomain.Product `json:"-"`
	Quantity      int                   `json:"quantity" gorm:"not null"`
	TotalAmount   float64               `json:"total_amount" gorm:"not null"`
	Status        string                `json:"status" gorm:"default:'pending'"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// TableName specifies the table name
func (Order) TableName() string {
	return "orders"
}

// Order statuses
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// ValidStatus reports whether s is one of the known order statuses
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// OrderRepository defines the contract for order data access
type OrderRepository interface {
	// Create inserts the order and decrements the product's inventory ledger
	// by order.Quantity in one transaction, refreshing the product mirror
	// from the new ledger value. The whole unit rolls back on any failure.
	// Returns the post-decrement inventory row.
	Create(ctx context.Context, order *Order) (*inventorydomain.Inventory, error)
	FindByID(ctx context.Context, id uint) (*Order, error)
	// FindAll returns all orders newest first.
	FindAll(ctx context.Context) ([]Order, error)
	// UpdateStatus rewrites status only; stock is never touched.
	UpdateStatus(ctx context.Context, id uint, status string) (*Order, error)
	// Delete removes the order row only; stock is never restored.
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}
