package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tair/shop-backoffice/internal/inventory/domain"
	productdomain "github.com/tair/shop-backoffice/internal/product/domain"
	"github.com/tair/shop-backoffice/pkg/database"
)

type GormInventoryRepository struct {
	db *gorm.DB
}

func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

func (r *GormInventoryRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Inventory{})
}

// Upsert overwrites the ledger for productID, creating the row when none
// exists. This is the provisioning path: the product mirror is not touched.
func (r *GormInventoryRepository) Upsert(ctx context.Context, productID uint, stockQuantity int, minStockLevel *int) (*domain.Inventory, error) {
	var result domain.Inventory

	err := database.WithRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var existing domain.Inventory
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("product_id = ?", productID).
				First(&existing).Error

			if errors.Is(err, gorm.ErrRecordNotFound) {
				created := domain.Inventory{
					ProductID:     productID,
					StockQuantity: stockQuantity,
					MinStockLevel: domain.DefaultMinStockLevel,
					LastUpdated:   time.Now(),
				}
				if minStockLevel != nil {
					created.MinStockLevel = *minStockLevel
				}
				if err := tx.Create(&created).Error; err != nil {
					return err
				}
				result = created
				return nil
			}
			if err != nil {
				return err
			}

			updates := map[string]interface{}{
				"stock_quantity": stockQuantity,
				"last_updated":   time.Now(),
			}
			if minStockLevel != nil {
				updates["min_stock_level"] = *minStockLevel
			}
			if err := tx.Model(&existing).Updates(updates).Error; err != nil {
				return err
			}
			return tx.First(&result, existing.ID).Error
		})
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *GormInventoryRepository) FindByID(ctx context.Context, id uint) (*domain.Inventory, error) {
	var inv domain.Inventory
	err := r.db.WithContext(ctx).First(&inv, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *GormInventoryRepository) FindByProductID(ctx context.Context, productID uint) (*domain.Inventory, error) {
	var inv domain.Inventory
	err := r.db.WithContext(ctx).Where("product_id = ?", productID).First(&inv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// FindAll joins the owning product's name into each row for display
func (r *GormInventoryRepository) FindAll(ctx context.Context) ([]domain.InventoryItem, error) {
	var items []domain.InventoryItem
	err := r.db.WithContext(ctx).Table("inventory").
		Select("inventory.*, products.name AS product_name").
		Joins("JOIN products ON products.id = inventory.product_id").
		Order("inventory.id DESC").
		Scan(&items).Error
	return items, err
}

// UpdateAndSync merges the supplied fields into the row and, when a quantity
// was supplied, carries the new ledger value into the product mirror
// (inventory -> product direction) inside the same transaction. The row is
// locked for the duration so concurrent fulfillment on the same product
// serializes against the correction.
func (r *GormInventoryRepository) UpdateAndSync(ctx context.Context, id uint, stockQuantity, minStockLevel *int) (*domain.Inventory, error) {
	var result domain.Inventory

	err := database.WithRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var existing domain.Inventory
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&existing, id).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			if err != nil {
				return err
			}

			updates := map[string]interface{}{"last_updated": time.Now()}
			if stockQuantity != nil {
				updates["stock_quantity"] = *stockQuantity
			}
			if minStockLevel != nil {
				updates["min_stock_level"] = *minStockLevel
			}
			if err := tx.Model(&existing).Updates(updates).Error; err != nil {
				return err
			}

			if stockQuantity != nil {
				err := tx.Model(&productdomain.Product{}).
					Where("id = ?", existing.ProductID).
					Update("stock_quantity", *stockQuantity).Error
				if err != nil {
					return err
				}
			}

			return tx.First(&result, id).Error
		})
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *GormInventoryRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.Inventory{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
