package command

import (
	"context"
	"fmt"
	"time"

	inventorydomain "github.com/tair/shop-backoffice/internal/inventory/domain"
	"github.com/tair/shop-backoffice/internal/product/domain"
	"github.com/tair/shop-backoffice/pkg/apperrors"
)

// CreateProductCommand represents the command to create a product
type CreateProductCommand struct {
	Name          string
	Description   string
	Category      string
	Price         float64
	Image         string
	StockQuantity int
}

// CreateProductHandler handles product creation command
type CreateProductHandler struct {
	repo domain.ProductRepository
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(repo domain.ProductRepository) *CreateProductHandler {
	return &CreateProductHandler{repo: repo}
}

// Handle executes the create product command. The product and its inventory
// row are provisioned together; the ledger starts at the supplied quantity
// with the default reorder threshold.
func (h *CreateProductHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*domain.Product, error) {
	// Validation
	if cmd.Name == "" {
		return nil, apperrors.InvalidInput("product name is required")
	}
	if cmd.Price < 0 {
		return nil, apperrors.InvalidInput("price cannot be negative")
	}
	if cmd.StockQuantity < 0 {
		return nil, apperrors.InvalidInput("stock quantity cannot be negative")
	}

	product := &domain.Product{
		Name:          cmd.Name,
		Description:   cmd.Description,
		Category:      cmd.Category,
		Price:         cmd.Price,
		Image:         cmd.Image,
		StockQuantity: cmd.StockQuantity,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := h.repo.Create(ctx, product, inventorydomain.DefaultMinStockLevel); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}
