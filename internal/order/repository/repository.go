package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	inventorydomain "github.com/tair/shop-backoffice/internal/inventory/domain"
	"github.com/tair/shop-backoffice/internal/order/domain"
	productdomain "github.com/tair/shop-backoffice/internal/product/domain"
	"github.com/tair/shop-backoffice/pkg/database"
)

type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Order{})
}

// Create performs the fulfillment unit of work: insert the order, decrement
// the inventory ledger, refresh the product mirror from the new ledger value.
// The inventory row is locked FOR UPDATE first, so fulfillments and manual
// corrections on the same product serialize while disjoint products proceed
// in parallel. Any failure rolls back the whole unit, including the order row.
//
// The ledger is allowed to go negative (backorder); callers decide whether to
// surface that to operators.
func (r *GormOrderRepository) Create(ctx context.Context, order *domain.Order) (*inventorydomain.Inventory, error) {
	var result inventorydomain.Inventory

	err := database.WithRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var inv inventorydomain.Inventory
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("product_id = ?", order.ProductID).
				First(&inv).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("product %d: %w", order.ProductID, inventorydomain.ErrNotFound)
			}
			if err != nil {
				return err
			}

			if err := tx.Create(order).Error; err != nil {
				return err
			}

			newQuantity := inv.StockQuantity - order.Quantity
			err = tx.Model(&inventorydomain.Inventory{}).
				Where("id = ?", inv.ID).
				Updates(map[string]interface{}{
					"stock_quantity": newQuantity,
					"last_updated":   time.Now(),
				}).Error
			if err != nil {
				return err
			}

			// Mirror refresh is an assignment from the ledger, not a second
			// decrement, so the mirror converges even if it had drifted.
			err = tx.Model(&productdomain.Product{}).
				Where("id = ?", order.ProductID).
				Update("stock_quantity", newQuantity).Error
			if err != nil {
				return err
			}

			inv.StockQuantity = newQuantity
			result = inv
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *GormOrderRepository) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	var order domain.Order
	err := r.db.WithContext(ctx).First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormOrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&orders).Error
	return orders, err
}

// UpdateStatus rewrites status and updated_at only. Transitions never touch
// stock: cancelling an order does not restock.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, id uint, status string) (*domain.Order, error) {
	res := r.db.WithContext(ctx).Model(&domain.Order{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	return r.FindByID(ctx, id)
}

// Delete removes the order row only; the stock decrement is not reversed.
func (r *GormOrderRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.Order{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *GormOrderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Order{}).Count(&count).Error
	return count, err
}
