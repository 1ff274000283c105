package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	inventorydomain "github.com/tair/shop-backoffice/internal/inventory/domain"
	"github.com/tair/shop-backoffice/internal/product/domain"
	"github.com/tair/shop-backoffice/pkg/database"
)

type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Product{})
}

// Create inserts the product together with its inventory row. The ledger
// starts at the product's stock quantity so the mirror holds from the moment
// the creation completes.
func (r *GormProductRepository) Create(ctx context.Context, product *domain.Product, minStockLevel int) error {
	return database.WithRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(product).Error; err != nil {
				return err
			}

			inv := &inventorydomain.Inventory{
				ProductID:     product.ID,
				StockQuantity: product.StockQuantity,
				MinStockLevel: minStockLevel,
				LastUpdated:   time.Now(),
			}
			return tx.Create(inv).Error
		})
	})
}

func (r *GormProductRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	var product domain.Product
	err := r.db.WithContext(ctx).First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&products).Error
	return products, err
}

// Update saves the merged product row. When syncInventory is set, the
// inventory ledger is overwritten with the product's stock quantity in the
// same transaction (product -> inventory mirror direction). The inventory
// row is written first so concurrent ledger writers serialize on it.
func (r *GormProductRepository) Update(ctx context.Context, product *domain.Product, syncInventory bool) error {
	return database.WithRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if syncInventory {
				err := tx.Model(&inventorydomain.Inventory{}).
					Where("product_id = ?", product.ID).
					Updates(map[string]interface{}{
						"stock_quantity": product.StockQuantity,
						"last_updated":   time.Now(),
					}).Error
				if err != nil {
					return err
				}
			}
			return tx.Save(product).Error
		})
	})
}

// Delete removes the product row; the inventory row goes with it through the
// ON DELETE CASCADE constraint.
func (r *GormProductRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *GormProductRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Product{}).Count(&count).Error
	return count, err
}
