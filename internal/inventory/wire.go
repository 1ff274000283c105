//go:build wireinject
// +build wireinject

package inventory

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/shop-backoffice/internal/inventory/delivery/http"
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.InventoryHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewInventoryHandler,
	)
	return nil, nil
}
