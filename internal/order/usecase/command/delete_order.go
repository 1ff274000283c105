package command

import (
	"context"

	"github.com/tair/shop-backoffice/internal/order/domain"
	"github.com/tair/shop-backoffice/pkg/apperrors"
)

// DeleteOrderCommand represents the command to delete an order
type DeleteOrderCommand struct {
	ID uint
}

// DeleteOrderHandler handles order deletion
type DeleteOrderHandler struct {
	repo domain.OrderRepository
}

// NewDeleteOrderHandler creates a new delete order handler
func NewDeleteOrderHandler(repo domain.OrderRepository) *DeleteOrderHandler {
	return &DeleteOrderHandler{repo: repo}
}

// Handle executes the delete order command. The stock decrement from the
// original fulfillment is not reversed.
func (h *DeleteOrderHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if cmd.ID == 0 {
		return apperrors.InvalidInput("id is required")
	}

	return h.repo.Delete(ctx, cmd.ID)
}
