package entities

import "time"

type Crop struct {
	CropID        uint    `gorm:"primaryKey" json:"crop_id"`
	Name          string  `gorm:"index" json:"name"`
	Variety       string  `json:"variety"`
	ShelfLifeDays int     `gorm:"default:180" json:"shelf_life_days"`
	MinStockTons  float64 `gorm:"default:100" json:"min_stock_tons"` // alert threshold

	CreatedAt time.Time
	UpdatedAt time.Time
}
