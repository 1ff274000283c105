package command

import (
	"context"

	"github.com/tair/shop-backoffice/internal/order/domain"
	"github.com/tair/shop-backoffice/pkg/apperrors"
)

// UpdateStatusCommand represents the command to change an order's status
type UpdateStatusCommand struct {
	ID     uint
	Status string
}

// UpdateStatusHandler handles order status updates
type UpdateStatusHandler struct {
	repo domain.OrderRepository
}

// NewUpdateStatusHandler creates a new update status handler
func NewUpdateStatusHandler(repo domain.OrderRepository) *UpdateStatusHandler {
	return &UpdateStatusHandler{repo: repo}
}

// Handle executes the status update. Transitions never touch stock; moving
// an order to cancelled does not restock.
func (h *UpdateStatusHandler) Handle(ctx context.Context, cmd UpdateStatusCommand) (*domain.Order, error) {
	if cmd.ID == 0 {
		return nil, apperrors.InvalidInput("id is required")
	}
	if !domain.ValidStatus(cmd.Status) {
		return nil, apperrors.InvalidInput("invalid order status %q", cmd.Status)
	}

	return h.repo.UpdateStatus(ctx, cmd.ID, cmd.Status)
}
