package repositoryImp

import (
	"time"

	"gorm.io/gorm"

	"harvestpro/entities"
	"harvestpro/pkg/inventory/repository"
)

type invRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.InventoryRepository { return &invRepo{db} }

func (r *invRepo) InTx(fn func(repository.InventoryRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&invRepo{tx})
	})
}

func (r *invRepo) CreateItem(it *entities.InventoryItem) error { return r.db.Create(it).Error }

func (r *invRepo) FindItem(id uint) (*entities.InventoryItem, error) {
	var it entities.InventoryItem
	if err := r.db.First(&it, id).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *invRepo) SaveItem(it *entities.InventoryItem) error { return r.db.Save(it).Error }

func (r *invRepo) ListItems() ([]entities.InventoryItem, error) {
	var out []entities.InventoryItem
	if err := r.db.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *invRepo) ExpiredItems(now time.Time) ([]entities.InventoryItem, error) {
	var out []entities.InventoryItem
	if err := r.db.Where("expiry_date < ? AND quantity_tons > 0", now).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *invRepo) SumTons() (float64, error) {
	var v *float64
	if err := r.db.Model(&entities.InventoryItem{}).Select("SUM(quantity_tons)").Scan(&v).Error; err != nil {
		return 0, err
	}
	if v == nil {
		return 0, nil
	}
	return *v, nil
}

func (r *invRepo) SumTonsAtLocation(locationID uint) (float64, error) {
	var v *float64
	if err := r.db.Model(&entities.InventoryItem{}).Where("location_id = ?", locationID).
		Select("SUM(quantity_tons)").Scan(&v).Error; err != nil {
		return 0, err
	}
	if v == nil {
		return 0, nil
	}
	return *v, nil
}

func (r *invRepo) TotalsByCrop() ([]repository.CropStock, error) {
	var out []repository.CropStock
	if err := r.db.Model(&entities.InventoryItem{}).
		Select(`crops.crop_id AS crop_id, crops.name AS crop_name,
SUM(inventory_items.quantity_tons) AS tons, COUNT(inventory_items.id) AS item_count,
crops.min_stock_tons AS min_stock_tons`).
		Joins("JOIN crops ON crops.crop_id = inventory_items.crop_id").
		Group("crops.crop_id").Order("tons DESC").Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *invRepo) CreateTx(tx *entities.InventoryTransaction) error { return r.db.Create(tx).Error }

func (r *invRepo) ListTx(limit int) ([]entities.InventoryTransaction, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []entities.InventoryTransaction
	if err := r.db.Order("created_at DESC").Limit(limit).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *invRepo) CreateLocation(l *entities.StorageLocation) error { return r.db.Create(l).Error }

func (r *invRepo) FindLocation(id uint) (*entities.StorageLocation, error) {
	var l entities.StorageLocation
	if err := r.db.First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *invRepo) ListLocations() ([]entities.StorageLocation, error) {
	var out []entities.StorageLocation
	if err := r.db.Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
