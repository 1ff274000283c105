package command

import (
	"context"

	"github.com/tair/shop-backoffice/internal/product/domain"
	"github.com/tair/shop-backoffice/pkg/apperrors"
)

// DeleteProductCommand represents the command to delete a product
type DeleteProductCommand struct {
	ID uint
}

// DeleteProductHandler handles product deletion command
type DeleteProductHandler struct {
	repo domain.ProductRepository
}

// NewDeleteProductHandler creates a new delete product handler
func NewDeleteProductHandler(repo domain.ProductRepository) *DeleteProductHandler {
	return &DeleteProductHandler{repo: repo}
}

// Handle executes the delete product command. The paired inventory row is
// removed by the store's cascade constraint.
func (h *DeleteProductHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	if cmd.ID == 0 {
		return apperrors.InvalidInput("invalid product id")
	}

	return h.repo.Delete(ctx, cmd.ID)
}
