package command

import (
	"context"

	"github.com/tair/shop-backoffice/internal/inventory/domain"
	"github.com/tair/shop-backoffice/pkg/apperrors"
)

// DeleteInventoryCommand represents the command to delete an inventory row
type DeleteInventoryCommand struct {
	ID uint
}

// DeleteInventoryHandler handles the delete inventory command
type DeleteInventoryHandler struct {
	repo domain.InventoryRepository
}

// NewDeleteInventoryHandler creates a new delete inventory handler
func NewDeleteInventoryHandler(repo domain.InventoryRepository) *DeleteInventoryHandler {
	return &DeleteInventoryHandler{repo: repo}
}

// Handle executes the delete inventory command
func (h *DeleteInventoryHandler) Handle(ctx context.Context, cmd DeleteInventoryCommand) error {
	if cmd.ID == 0 {
		return apperrors.InvalidInput("id is required")
	}

	return h.repo.Delete(ctx, cmd.ID)
}
