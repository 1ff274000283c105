package command

import (
	"context"
	"fmt"

	"github.com/tair/shop-backoffice/internal/inventory/domain"
	"github.com/tair/shop-backoffice/pkg/apperrors"
)

// UpsertInventoryCommand represents the command to create or overwrite the
// inventory row for a product. A nil MinStockLevel preserves the stored
// threshold, or applies the default on create.
type UpsertInventoryCommand struct {
	ProductID     uint
	StockQuantity int
	MinStockLevel *int
}

// UpsertInventoryHandler handles the upsert inventory command
type UpsertInventoryHandler struct {
	repo domain.InventoryRepository
}

// NewUpsertInventoryHandler creates a new upsert inventory handler
func NewUpsertInventoryHandler(repo domain.InventoryRepository) *UpsertInventoryHandler {
	return &UpsertInventoryHandler{repo: repo}
}

// Handle executes the upsert inventory command. This is the provisioning
// path: the product mirror is not written here.
func (h *UpsertInventoryHandler) Handle(ctx context.Context, cmd UpsertInventoryCommand) (*domain.Inventory, error) {
	if cmd.ProductID == 0 {
		return nil, apperrors.InvalidInput("product_id is required")
	}
	if cmd.MinStockLevel != nil && *cmd.MinStockLevel < 0 {
		return nil, apperrors.InvalidInput("min stock level cannot be negative")
	}

	inv, err := h.repo.Upsert(ctx, cmd.ProductID, cmd.StockQuantity, cmd.MinStockLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert inventory: %w", err)
	}

	return inv, nil
}
