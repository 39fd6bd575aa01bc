package repository

import "harvestpro/entities"

// FarmStats aggregates a farm's fields and harvests for the management view.
type FarmStats struct {
	FarmID        uint    `json:"farm_id"`
	FieldCount    int64   `json:"field_count"`
	TotalAreaHa   float64 `json:"total_area_ha"`
	HarvestedTons float64 `json:"harvested_tons"`
}

type FarmRepository interface {
	Create(f *entities.Farm) error
	FindByID(id uint) (*entities.Farm, error)
	List(activeOnly bool) ([]entities.Farm, error)
	Save(f *entities.Farm) error
	Deactivate(id uint) error
	Stats(farmID uint) (*FarmStats, error)
}
