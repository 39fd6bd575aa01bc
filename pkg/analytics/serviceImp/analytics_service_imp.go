package serviceImp

import (
	"time"

	"harvestpro/pkg/analytics/service"
	croprepo "harvestpro/pkg/crop/repository"
	farmrepo "harvestpro/pkg/farm/repository"
	harvestrepo "harvestpro/pkg/harvest/repository"
	invrepo "harvestpro/pkg/inventory/repository"
)

// baselineTonsPerHa is the expected yield used when a crop has no
// recorded baseline of its own.
const baselineTonsPerHa = 5.0

// defaultEfficiency is reported before any harvest data exists.
const defaultEfficiency = 85

type analyticsSvc struct {
	farms    farmrepo.FarmRepository
	crops    croprepo.CropRepository
	harvests harvestrepo.HarvestRepository
	inv      invrepo.InventoryRepository
}

func New(farms farmrepo.FarmRepository, crops croprepo.CropRepository,
	harvests harvestrepo.HarvestRepository, inv invrepo.InventoryRepository) service.AnalyticsService {
	return &analyticsSvc{farms: farms, crops: crops, harvests: harvests, inv: inv}
}

func (s *analyticsSvc) Dashboard() (*service.Dashboard, error) {
	d := &service.Dashboard{}

	tons, err := s.harvests.SumTons()
	if err != nil {
		return nil, err
	}
	d.TotalHarvested = tons

	farms, err := s.farms.List(true)
	if err != nil {
		return nil, err
	}
	d.ActiveFarms = len(farms)

	inv, err := s.inv.SumTons()
	if err != nil {
		return nil, err
	}
	d.TotalInventory = inv

	// Efficiency: actual vs area*baseline, counting only fields that
	// have harvest records so idle plantings don't drag the figure down.
	harvestedArea, err := s.harvests.HarvestedAreaHa()
	if err != nil {
		return nil, err
	}
	if tons > 0 && harvestedArea > 0 {
		eff := int(tons / (harvestedArea * baselineTonsPerHa) * 100)
		if eff > 100 {
			eff = 100
		}
		d.AvgYieldEfficiency = eff
	} else {
		d.AvgYieldEfficiency = defaultEfficiency
	}

	year := time.Now().Year()
	monthly, err := s.harvests.MonthlyTotals(year)
	if err != nil {
		return nil, err
	}
	for m := 0; m < 12; m++ {
		d.HarvestTrends = append(d.HarvestTrends, service.MonthPoint{
			Month: time.Month(m + 1).String()[:3],
			Value: monthly[m],
		})
	}

	byCrop, err := s.harvests.TotalsByCrop()
	if err != nil {
		return nil, err
	}
	var cropTotal float64
	for _, ct := range byCrop {
		cropTotal += ct.Tons
	}
	for _, ct := range byCrop {
		pct := 0.0
		if cropTotal > 0 {
			pct = round1(ct.Tons / cropTotal * 100)
		}
		d.CropDistribution = append(d.CropDistribution, service.CropShare{
			Crop: ct.CropName, Percentage: pct, Quantity: ct.Tons,
		})
	}

	// Expected vs actual for the first four active farms.
	limit := 4
	if len(farms) < limit {
		limit = len(farms)
	}
	for _, f := range farms[:limit] {
		st, err := s.farms.Stats(f.FarmID)
		if err != nil {
			return nil, err
		}
		actual, err := s.harvests.SumTonsByFarm(f.FarmID)
		if err != nil {
			return nil, err
		}
		d.YieldPerformance = append(d.YieldPerformance, service.YieldBar{
			Farm: f.Name, Expected: st.TotalAreaHa * baselineTonsPerHa, Actual: actual,
		})
	}

	recent, err := s.harvests.Query(harvestrepo.HarvestFilter{Limit: 5})
	if err != nil {
		return nil, err
	}
	d.RecentHarvests = recent

	upcoming, err := s.crops.FieldsDueWithin(30)
	if err != nil {
		return nil, err
	}
	if len(upcoming) > 5 {
		upcoming = upcoming[:5]
	}
	d.UpcomingHarvests = upcoming

	return d, nil
}

func (s *analyticsSvc) YearlyTrends(year int) ([]service.MonthStat, error) {
	tons, err := s.harvests.MonthlyTotals(year)
	if err != nil {
		return nil, err
	}
	counts, err := s.harvests.MonthlyCounts(year)
	if err != nil {
		return nil, err
	}
	out := make([]service.MonthStat, 0, 12)
	for m := 0; m < 12; m++ {
		out = append(out, service.MonthStat{
			Month:        time.Month(m + 1).String(),
			HarvestCount: counts[m],
			TotalTons:    tons[m],
		})
	}
	return out, nil
}

func (s *analyticsSvc) FarmEfficiency(farmID uint) (*service.FarmEfficiency, error) {
	if _, err := s.farms.FindByID(farmID); err != nil {
		return nil, err
	}
	st, err := s.farms.Stats(farmID)
	if err != nil {
		return nil, err
	}
	actual, err := s.harvests.SumTonsByFarm(farmID)
	if err != nil {
		return nil, err
	}
	expected := st.TotalAreaHa * baselineTonsPerHa
	eff := 0.0
	if expected > 0 {
		eff = actual / expected * 100
		if eff > 100 {
			eff = 100
		}
	}
	return &service.FarmEfficiency{
		FarmID:            farmID,
		Efficiency:        eff,
		ActualYield:       actual,
		ExpectedYield:     expected,
		IsUnderperforming: eff < 70,
	}, nil
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
