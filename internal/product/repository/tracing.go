package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tair/shop-backoffice/internal/product/domain"
)

var tracer = otel.Tracer("product-repository")

// GormProductRepositoryWithTracing wraps the write operations of
// GormProductRepository with spans. Read operations pass through.
type GormProductRepositoryWithTracing struct {
	*GormProductRepository
}

// NewGormProductRepositoryWithTracing creates a new repository with tracing
func NewGormProductRepositoryWithTracing(db *gorm.DB) *GormProductRepositoryWithTracing {
	return &GormProductRepositoryWithTracing{
		GormProductRepository: NewGormProductRepository(db),
	}
}

// Create runs the underlying create under a span
func (r *GormProductRepositoryWithTracing) Create(ctx context.Context, product *domain.Product, minStockLevel int) error {
	ctx, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("product.name", product.Name),
			attribute.Int("product.stock_quantity", product.StockQuantity),
			attribute.Int("inventory.min_stock_level", minStockLevel),
		),
	)
	defer span.End()

	err := r.GormProductRepository.Create(ctx, product, minStockLevel)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("product.id", int(product.ID)))
	return nil
}

// Update runs the underlying update under a span
func (r *GormProductRepositoryWithTracing) Update(ctx context.Context, product *domain.Product, syncInventory bool) error {
	ctx, span := tracer.Start(ctx, "repository.Update",
		trace.WithAttributes(
			attribute.Int("product.id", int(product.ID)),
			attribute.Bool("product.sync_inventory", syncInventory),
		),
	)
	defer span.End()

	err := r.GormProductRepository.Update(ctx, product, syncInventory)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

// Delete runs the underlying delete under a span
func (r *GormProductRepositoryWithTracing) Delete(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(attribute.Int("product.id", int(id))),
	)
	defer span.End()

	err := r.GormProductRepository.Delete(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
