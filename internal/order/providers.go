package order

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/shop-backoffice/internal/order/domain"
	"github.com/tair/shop-backoffice/internal/order/repository"
)

// ProvideOrderRepository provides the traced order repository
func ProvideOrderRepository(db *gorm.DB) domain.OrderRepository {
	return repository.NewGormOrderRepositoryWithTracing(db)
}

// RepositorySet is the wire provider set for the order repository
var RepositorySet = wire.NewSet(ProvideOrderRepository)
