package repository

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tair/shop-backoffice/internal/inventory/domain"
)

var tracer = otel.Tracer("inventory-repository")

// GormInventoryRepositoryWithTracing wraps the ledger operations of
// GormInventoryRepository with spans. List reads pass through.
type GormInventoryRepositoryWithTracing struct {
	*GormInventoryRepository
}

// NewGormInventoryRepositoryWithTracing creates a new repository with tracing
func NewGormInventoryRepositoryWithTracing(db *gorm.DB) *GormInventoryRepositoryWithTracing {
	return &GormInventoryRepositoryWithTracing{
		GormInventoryRepository: NewGormInventoryRepository(db),
	}
}

// Upsert runs the underlying upsert under a span
func (r *GormInventoryRepositoryWithTracing) Upsert(ctx context.Context, productID uint, stockQuantity int, minStockLevel *int) (*domain.Inventory, error) {
	ctx, span := tracer.Start(ctx, "repository.Upsert",
		trace.WithAttributes(
			attribute.Int("inventory.product_id", int(productID)),
			attribute.Int("inventory.stock_quantity", stockQuantity),
		),
	)
	defer span.End()

	inv, err := r.GormInventoryRepository.Upsert(ctx, productID, stockQuantity, minStockLevel)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("inventory.id", int(inv.ID)))
	return inv, nil
}

// UpdateAndSync runs the underlying update under a span
func (r *GormInventoryRepositoryWithTracing) UpdateAndSync(ctx context.Context, id uint, stockQuantity, minStockLevel *int) (*domain.Inventory, error) {
	ctx, span := tracer.Start(ctx, "repository.UpdateAndSync",
		trace.WithAttributes(attribute.Int("inventory.id", int(id))),
	)
	defer span.End()

	inv, err := r.GormInventoryRepository.UpdateAndSync(ctx, id, stockQuantity, minStockLevel)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("inventory.product_id", int(inv.ProductID)),
		attribute.Int("inventory.stock_quantity", inv.StockQuantity),
	)
	return inv, nil
}

// FindByID runs the underlying lookup under a span. A miss is a normal
// outcome, not a span error.
func (r *GormInventoryRepositoryWithTracing) FindByID(ctx context.Context, id uint) (*domain.Inventory, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(attribute.Int("inventory.id", int(id))),
	)
	defer span.End()

	inv, err := r.GormInventoryRepository.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return nil, err
	}
	return inv, nil
}
