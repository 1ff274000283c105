package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	inventorydomain "github.com/tair/shop-backoffice/internal/inventory/domain"
	"github.com/tair/shop-backoffice/internal/order/domain"
)

var tracer = otel.Tracer("order-repository")

// GormOrderRepositoryWithTracing wraps the fulfillment operations of
// GormOrderRepository with spans. Reads pass through.
type GormOrderRepositoryWithTracing struct {
	*GormOrderRepository
}

// NewGormOrderRepositoryWithTracing creates a new repository with tracing
func NewGormOrderRepositoryWithTracing(db *gorm.DB) *GormOrderRepositoryWithTracing {
	return &GormOrderRepositoryWithTracing{
		GormOrderRepository: NewGormOrderRepository(db),
	}
}

// Create runs the fulfillment unit of work under a span
func (r *GormOrderRepositoryWithTracing) Create(ctx context.Context, order *domain.Order) (*inventorydomain.Inventory, error) {
	ctx, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.Int("order.product_id", int(order.ProductID)),
			attribute.Int("order.quantity", order.Quantity),
		),
	)
	defer span.End()

	inv, err := r.GormOrderRepository.Create(ctx, order)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("order.id", int(order.ID)),
		attribute.Int("inventory.stock_quantity", inv.StockQuantity),
	)
	return inv, nil
}

// UpdateStatus runs the underlying status rewrite under a span
func (r *GormOrderRepositoryWithTracing) UpdateStatus(ctx context.Context, id uint, status string) (*domain.Order, error) {
	ctx, span := tracer.Start(ctx, "repository.UpdateStatus",
		trace.WithAttributes(
			attribute.Int("order.id", int(id)),
			attribute.String("order.status", status),
		),
	)
	defer span.End()

	order, err := r.GormOrderRepository.UpdateStatus(ctx, id, status)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return order, nil
}
