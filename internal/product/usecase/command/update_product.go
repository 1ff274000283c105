package command

import (
	"context"
	"fmt"
	"time"

	"github.com/tair/shop-backoffice/internal/product/domain"
	"github.com/tair/shop-backoffice/pkg/apperrors"
)

// UpdateProductCommand represents the command to update a product. Nil fields
// keep the stored value (COALESCE merge).
type UpdateProductCommand struct {
	ID            uint
	Name          *string
	Description   *string
	Category      *string
	Price         *float64
	Image         *string
	StockQuantity *int
}

// UpdateProductHandler handles product update command
type UpdateProductHandler struct {
	repo domain.ProductRepository
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(repo domain.ProductRepository) *UpdateProductHandler {
	return &UpdateProductHandler{repo: repo}
}

// Handle executes the update product command. When a stock quantity is
// supplied, the inventory ledger is overwritten with the same value in the
// same transaction so the mirror invariant holds.
func (h *UpdateProductHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*domain.Product, error) {
	if cmd.ID == 0 {
		return nil, apperrors.InvalidInput("invalid product id")
	}
	if cmd.Price != nil && *cmd.Price < 0 {
		return nil, apperrors.InvalidInput("price cannot be negative")
	}

	product, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil {
		product.Name = *cmd.Name
	}
	if cmd.Description != nil {
		product.Description = *cmd.Description
	}
	if cmd.Category != nil {
		product.Category = *cmd.Category
	}
	if cmd.Price != nil {
		product.Price = *cmd.Price
	}
	if cmd.Image != nil {
		product.Image = *cmd.Image
	}

	syncInventory := cmd.StockQuantity != nil
	if syncInventory {
		product.StockQuantity = *cmd.StockQuantity
	}
	product.UpdatedAt = time.Now()

	if err := h.repo.Update(ctx, product, syncInventory); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}
