//go:build wireinject
// +build wireinject

package order

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/shop-backoffice/internal/order/delivery/http"
	"github.com/tair/shop-backoffice/internal/order/usecase/command"
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, publisher command.EventPublisher) (*http.OrderHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewOrderHandler,
	)
	return nil, nil
}
