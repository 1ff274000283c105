package query

import (
	"context"
	"fmt"

	"github.com/tair/shop-backoffice/internal/inventory/domain"
)

// ListInventoryQuery represents the query to list all inventory rows
type ListInventoryQuery struct{}

// ListInventoryHandler handles list inventory query
type ListInventoryHandler struct {
	repo domain.InventoryRepository
}

// NewListInventoryHandler creates a new list inventory handler
func NewListInventoryHandler(repo domain.InventoryRepository) *ListInventoryHandler {
	return &ListInventoryHandler{repo: repo}
}

// Handle executes the list inventory query; rows carry the owning product name
func (h *ListInventoryHandler) Handle(ctx context.Context, _ ListInventoryQuery) ([]domain.InventoryItem, error) {
	items, err := h.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	return items, nil
}
