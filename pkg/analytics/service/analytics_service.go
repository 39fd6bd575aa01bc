package service

import "harvestpro/entities"

type MonthPoint struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

type CropShare struct {
	Crop       string  `json:"crop"`
	Percentage float64 `json:"percentage"`
	Quantity   float64 `json:"quantity"`
}

type YieldBar struct {
	Farm     string  `json:"farm"`
	Expected float64 `json:"expected"`
	Actual   float64 `json:"actual"`
}

type Dashboard struct {
	TotalHarvested     float64                  `json:"total_harvested"`
	ActiveFarms        int                      `json:"active_farms"`
	TotalInventory     float64                  `json:"total_inventory"`
	AvgYieldEfficiency int                      `json:"avg_yield_efficiency"`
	HarvestTrends      []MonthPoint             `json:"harvest_trends"`
	CropDistribution   []CropShare              `json:"crop_distribution"`
	YieldPerformance   []YieldBar               `json:"yield_performance"`
	RecentHarvests     []entities.HarvestRecord `json:"recent_harvests"`
	UpcomingHarvests   []entities.Field         `json:"upcoming_harvests"`
}

type MonthStat struct {
	Month        string  `json:"month"`
	HarvestCount int64   `json:"harvest_count"`
	TotalTons    float64 `json:"total_quantity"`
}

type FarmEfficiency struct {
	FarmID            uint    `json:"farm_id"`
	Efficiency        float64 `json:"efficiency"`
	ActualYield       float64 `json:"actual_yield"`
	ExpectedYield     float64 `json:"expected_yield"`
	IsUnderperforming bool    `json:"is_underperforming"`
}

type AnalyticsService interface {
	Dashboard() (*Dashboard, error)
	YearlyTrends(year int) ([]MonthStat, error)
	FarmEfficiency(farmID uint) (*FarmEfficiency, error)
}
