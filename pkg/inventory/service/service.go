package service

import (
	"errors"
	"time"

	"harvestpro/entities"
	"harvestpro/pkg/inventory/repository"
)

var (
	ErrInsufficientStock = errors.New("not enough stock in batch")
	ErrOverCapacity      = errors.New("location over capacity")
)

type AddItemInput struct {
	CropID       uint
	LocationID   uint
	QuantityTons float64
	QualityGrade string
	ExpiryDate   time.Time
	AddedBy      uint
}

type Service interface {
	// Add stores a new batch, assigns it a batch number and writes an
	// "add" ledger entry.
	Add(in AddItemInput) (*entities.InventoryItem, error)
	// Remove takes quantity out of a batch; the batch stays on record at
	// zero so its ledger remains traceable.
	Remove(itemID uint, tons float64, by uint, notes string) (*entities.InventoryItem, error)
	// Adjust overwrites a batch quantity, recording the delta.
	Adjust(itemID uint, tons float64, by uint, notes string) (*entities.InventoryItem, error)
	// ExpireDue zeroes every batch past its expiry date and returns how
	// many were swept.
	ExpireDue(now time.Time, by uint) (int, error)

	ListItems() ([]entities.InventoryItem, float64, []repository.CropStock, error)
	Transactions(limit int) ([]entities.InventoryTransaction, error)

	// Alerts returns crops whose stock fell under MinStockTons and batches
	// expiring within the window.
	Alerts(now time.Time, window time.Duration) ([]repository.CropStock, []entities.InventoryItem, error)

	AddLocation(l *entities.StorageLocation) error
	ListLocations() ([]entities.StorageLocation, error)
}
