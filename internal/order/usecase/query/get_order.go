package query

import (
	"context"

	"github.com/tair/shop-backoffice/internal/order/domain"
	"github.com/tair/shop-backoffice/pkg/apperrors"
)

// GetOrderQuery represents the query to get an order
type GetOrderQuery struct {
	ID uint
}

// GetOrderHandler handles get order query
type GetOrderHandler struct {
	repo domain.OrderRepository
}

// NewGetOrderHandler creates a new get order handler
func NewGetOrderHandler(repo domain.OrderRepository) *GetOrderHandler {
	return &GetOrderHandler{repo: repo}
}

// Handle executes the get order query
func (h *GetOrderHandler) Handle(ctx context.Context, query GetOrderQuery) (*domain.Order, error) {
	if query.ID == 0 {
		return nil, apperrors.InvalidInput("id is required")
	}

	return h.repo.FindByID(ctx, query.ID)
}
