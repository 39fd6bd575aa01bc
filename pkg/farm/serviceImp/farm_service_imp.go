package serviceImp

import (
	"errors"

	"harvestpro/entities"
	repo "harvestpro/pkg/farm/repository"
	"harvestpro/pkg/farm/service"
)

// hectaresToAcres converts the stored hectare figures to the acres the
// management screen reports.
const hectaresToAcres = 2.47105

type farmSvc struct{ r repo.FarmRepository }

func NewFarmService(r repo.FarmRepository) service.FarmService { return &farmSvc{r} }

func (s *farmSvc) CreateFarm(f *entities.Farm) (*entities.Farm, error) {
	if f.Name == "" {
		return nil, errors.New("name is required")
	}
	if f.TotalAreaHa <= 0 {
		return nil, errors.New("total_area_ha must be positive")
	}
	f.IsActive = true
	if err := s.r.Create(f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *farmSvc) GetFarm(id uint) (*entities.Farm, error) { return s.r.FindByID(id) }

func (s *farmSvc) UpdateFarm(id uint, p service.FarmPatch) (*entities.Farm, error) {
	cur, err := s.r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if p.Name != nil {
		cur.Name = *p.Name
	}
	if p.Location != nil {
		cur.Location = *p.Location
	}
	if p.TotalAreaHa != nil {
		if *p.TotalAreaHa <= 0 {
			return nil, errors.New("total_area_ha must be positive")
		}
		cur.TotalAreaHa = *p.TotalAreaHa
	}
	if p.ManagerID != nil {
		cur.ManagerID = *p.ManagerID
	}
	return cur, s.r.Save(cur)
}

func (s *farmSvc) DeactivateFarm(id uint) error {
	if _, err := s.r.FindByID(id); err != nil {
		return err
	}
	return s.r.Deactivate(id)
}

func (s *farmSvc) Overview(activeOnly bool) ([]service.FarmOverview, error) {
	farms, err := s.r.List(activeOnly)
	if err != nil {
		return nil, err
	}
	out := make([]service.FarmOverview, 0, len(farms))
	for _, f := range farms {
		st, err := s.r.Stats(f.FarmID)
		if err != nil {
			return nil, err
		}
		ov := service.FarmOverview{
			Farm:          f,
			FieldCount:    st.FieldCount,
			TotalAreaAc:   st.TotalAreaHa * hectaresToAcres,
			HarvestedTons: st.HarvestedTons,
		}
		if ov.TotalAreaAc > 0 {
			ov.AvgYield = ov.HarvestedTons / ov.TotalAreaAc
		}
		out = append(out, ov)
	}
	return out, nil
}

func (s *farmSvc) Stats(farmID uint) (*repo.FarmStats, error) { return s.r.Stats(farmID) }
