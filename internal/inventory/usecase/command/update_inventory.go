package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/tair/shop-backoffice/internal/inventory/domain"
	"github.com/tair/shop-backoffice/pkg/apperrors"
)

// UpdateInventoryCommand represents the command used when an operator
// manually corrects stock. Nil fields keep the stored values.
type UpdateInventoryCommand struct {
	ID            uint
	StockQuantity *int
	MinStockLevel *int
}

// UpdateInventoryHandler handles the update inventory command
type UpdateInventoryHandler struct {
	repo domain.InventoryRepository
}

// NewUpdateInventoryHandler creates a new update inventory handler
func NewUpdateInventoryHandler(repo domain.InventoryRepository) *UpdateInventoryHandler {
	return &UpdateInventoryHandler{repo: repo}
}

// Handle executes the update inventory command. When a quantity is supplied
// the new ledger value is propagated to the product mirror atomically.
// An unknown id is reported as domain.ErrNotFound, never as a silent no-op.
func (h *UpdateInventoryHandler) Handle(ctx context.Context, cmd UpdateInventoryCommand) (*domain.Inventory, error) {
	if cmd.ID == 0 {
		return nil, apperrors.InvalidInput("id is required")
	}
	if cmd.MinStockLevel != nil && *cmd.MinStockLevel < 0 {
		return nil, apperrors.InvalidInput("min stock level cannot be negative")
	}

	inv, err := h.repo.UpdateAndSync(ctx, cmd.ID, cmd.StockQuantity, cmd.MinStockLevel)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update inventory: %w", err)
	}

	return inv, nil
}
