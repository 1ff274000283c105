package query

import (
	"context"
	"fmt"

	"github.com/tair/shop-backoffice/internal/product/domain"
)

// GetStatsQuery represents the query for catalog statistics
type GetStatsQuery struct{}

// Stats holds catalog statistics for the dashboard
type Stats struct {
	TotalProducts int64 `json:"total_products"`
}

// GetStatsHandler handles the stats query
type GetStatsHandler struct {
	repo domain.ProductRepository
}

// NewGetStatsHandler creates a new stats handler
func NewGetStatsHandler(repo domain.ProductRepository) *GetStatsHandler {
	return &GetStatsHandler{repo: repo}
}

// Handle executes the stats query
func (h *GetStatsHandler) Handle(ctx context.Context, _ GetStatsQuery) (*Stats, error) {
	count, err := h.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}
	return &Stats{TotalProducts: count}, nil
}
