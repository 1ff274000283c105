package query

import (
	"context"

	"github.com/tair/shop-backoffice/internal/inventory/domain"
	"github.com/tair/shop-backoffice/pkg/apperrors"
)

// GetInventoryQuery represents the query to get an inventory row
type GetInventoryQuery struct {
	ID uint
}

// GetInventoryHandler handles get inventory query
type GetInventoryHandler struct {
	repo domain.InventoryRepository
}

// NewGetInventoryHandler creates a new get inventory handler
func NewGetInventoryHandler(repo domain.InventoryRepository) *GetInventoryHandler {
	return &GetInventoryHandler{repo: repo}
}

// Handle executes the get inventory query
func (h *GetInventoryHandler) Handle(ctx context.Context, query GetInventoryQuery) (*domain.Inventory, error) {
	if query.ID == 0 {
		return nil, apperrors.InvalidInput("id is required")
	}

	return h.repo.FindByID(ctx, query.ID)
}
