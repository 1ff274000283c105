package inventory

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/shop-backoffice/internal/inventory/domain"
	"github.com/tair/shop-backoffice/internal/inventory/repository"
)

// ProvideInventoryRepository provides the traced inventory repository
func ProvideInventoryRepository(db *gorm.DB) domain.InventoryRepository {
	return repository.NewGormInventoryRepositoryWithTracing(db)
}

// RepositorySet is the wire provider set for the inventory repository
var RepositorySet = wire.NewSet(ProvideInventoryRepository)
