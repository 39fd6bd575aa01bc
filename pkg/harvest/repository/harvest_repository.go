package repository

import (
	"time"

	"harvestpro/entities"
)

// HarvestFilter narrows Query. The date range is half-open: From is
// inclusive, To is exclusive, same as SumTonsBetween.
type HarvestFilter struct {
	FieldID uint
	FarmID  uint
	Grade   string
	From    time.Time
	To      time.Time
	Limit   int
}

// CropTotal is the per-crop share of everything harvested.
type CropTotal struct {
	CropName string  `json:"crop_name"`
	Tons     float64 `json:"tons"`
}

type HarvestRepository interface {
	Create(h *entities.HarvestRecord) error
	ListByField(fieldID uint, limit int) ([]entities.HarvestRecord, error)
	Query(f HarvestFilter) ([]entities.HarvestRecord, error)

	Count() (int64, error)
	CountSince(t time.Time) (int64, error)
	SumTons() (float64, error)
	SumTonsBetween(from, to time.Time) (tons float64, count int64, err error)
	SumTonsByFarm(farmID uint) (float64, error)
	// HarvestedAreaHa sums the area of fields that have at least one
	// harvest record.
	HarvestedAreaHa() (float64, error)
	// MonthlyTotals returns tons harvested per calendar month of a year,
	// index 0 = January.
	MonthlyTotals(year int) ([12]float64, error)
	MonthlyCounts(year int) ([12]int64, error)
	TotalsByCrop() ([]CropTotal, error)
}
