package entities

import (
	"time"

	"gorm.io/gorm"
)

// Inventory transaction actions.
const (
	TxAdd     = "add"
	TxRemove  = "remove"
	TxAdjust  = "adjust"
	TxExpired = "expired"
)

type StorageLocation struct {
	// ID, CreatedAt, UpdatedAt, DeletedAt
	gorm.Model
	Name         string  `gorm:"uniqueIndex" json:"name"`
	Code         string  `gorm:"uniqueIndex" json:"code"` // short code, e.g. WH-A
	Address      string  `json:"address"`
	CapacityTons float64 `json:"capacity_tons"`
	IsActive     bool    `gorm:"default:true" json:"is_active"`
}

type InventoryItem struct {
	gorm.Model
	CropID       uint      `gorm:"index" json:"crop_id"`
	LocationID   uint      `gorm:"index" json:"location_id"`
	QuantityTons float64   `json:"quantity_tons"`
	QualityGrade string    `json:"quality_grade"` // A|B|C|D
	BatchNo      string    `gorm:"uniqueIndex" json:"batch_no"`
	DateStored   time.Time `json:"date_stored"`
	ExpiryDate   time.Time `gorm:"index" json:"expiry_date"`
	AddedBy      uint      `json:"added_by"`
}

type InventoryTransaction struct {
	TxID         uint      `gorm:"primaryKey" json:"tx_id"`
	ItemID       uint      `gorm:"index" json:"item_id"`
	Action       string    `gorm:"index" json:"action"` // add|remove|adjust|expired
	QuantityTons float64   `json:"quantity_tons"`
	PerformedBy  uint      `json:"performed_by"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
}
