package repository

import (
	"time"

	"harvestpro/entities"
)

// CropStock is the stock position of one crop across all locations.
type CropStock struct {
	CropID       uint    `json:"crop_id"`
	CropName     string  `json:"crop_name"`
	Tons         float64 `json:"tons"`
	ItemCount    int64   `json:"item_count"`
	MinStockTons float64 `json:"min_stock_tons"`
}

type InventoryRepository interface {
	// InTx runs fn against a repository bound to a single transaction,
	// so a stock write and its ledger entry commit or roll back together.
	InTx(fn func(InventoryRepository) error) error

	CreateItem(it *entities.InventoryItem) error
	FindItem(id uint) (*entities.InventoryItem, error)
	SaveItem(it *entities.InventoryItem) error
	ListItems() ([]entities.InventoryItem, error)
	ExpiredItems(now time.Time) ([]entities.InventoryItem, error)

	SumTons() (float64, error)
	SumTonsAtLocation(locationID uint) (float64, error)
	TotalsByCrop() ([]CropStock, error)

	CreateTx(tx *entities.InventoryTransaction) error
	ListTx(limit int) ([]entities.InventoryTransaction, error)

	CreateLocation(l *entities.StorageLocation) error
	FindLocation(id uint) (*entities.StorageLocation, error)
	ListLocations() ([]entities.StorageLocation, error)
}
