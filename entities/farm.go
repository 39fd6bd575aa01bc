package entities

import "time"

type Farm struct {
	FarmID      uint    `gorm:"primaryKey" json:"farm_id"`
	Name        string  `json:"name"`
	ManagerID   uint    `gorm:"index" json:"manager_id"`
	Location    string  `json:"location"`
	TotalAreaHa float64 `json:"total_area_ha"`
	IsActive    bool    `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Field is a planted plot inside a farm, one crop per field per cycle.
type Field struct {
	FieldID             uint      `gorm:"primaryKey" json:"field_id"`
	FarmID              uint      `gorm:"index" json:"farm_id"`
	Name                string    `json:"name"`
	CropID              uint      `gorm:"index" json:"crop_id"`
	AreaHa              float64   `json:"area_ha"`
	PlantingDate        time.Time `json:"planting_date"`
	ExpectedHarvestDate time.Time `gorm:"index" json:"expected_harvest_date"`
	SupervisorID        uint      `json:"supervisor_id"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
