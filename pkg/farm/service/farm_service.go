package service

import (
	"harvestpro/entities"
	"harvestpro/pkg/farm/repository"
)

// FarmOverview is a farm with the derived numbers shown on the
// management screen. Area in acres, yield in tons per acre.
type FarmOverview struct {
	entities.Farm
	FieldCount    int64   `json:"field_count"`
	TotalAreaAc   float64 `json:"total_area_ac"`
	HarvestedTons float64 `json:"harvested_tons"`
	AvgYield      float64 `json:"avg_yield"`
}

type FarmService interface {
	CreateFarm(f *entities.Farm) (*entities.Farm, error)
	GetFarm(id uint) (*entities.Farm, error)
	UpdateFarm(id uint, patch FarmPatch) (*entities.Farm, error)
	DeactivateFarm(id uint) error
	Overview(activeOnly bool) ([]FarmOverview, error)
	Stats(farmID uint) (*repository.FarmStats, error)
}

type FarmPatch struct {
	Name        *string
	Location    *string
	TotalAreaHa *float64
	ManagerID   *uint
}
