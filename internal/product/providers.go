package product

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/shop-backoffice/internal/product/domain"
	"github.com/tair/shop-backoffice/internal/product/repository"
)

// ProvideProductRepository provides the traced product repository
func ProvideProductRepository(db *gorm.DB) domain.ProductRepository {
	return repository.NewGormProductRepositoryWithTracing(db)
}

// RepositorySet is the wire provider set for the product repository
var RepositorySet = wire.NewSet(ProvideProductRepository)
