package notify

import (
	"time"

	"harvestpro/entities"
	croprepo "harvestpro/pkg/crop/repository"
	invrepo "harvestpro/pkg/inventory/repository"
)

// Digest is everything currently needing attention.
type Digest struct {
	UpcomingHarvests  []entities.Field         `json:"upcoming_harvests"`
	LowInventory      []invrepo.CropStock      `json:"low_inventory"`
	ExpiringBatches   []entities.InventoryItem `json:"expiring_batches"`
	NotificationCount int                      `json:"notification_count"`
}

type Service struct {
	crops croprepo.CropRepository
	inv   invrepo.InventoryRepository
}

func New(crops croprepo.CropRepository, inv invrepo.InventoryRepository) *Service {
	return &Service{crops: crops, inv: inv}
}

// Current collects fields due for harvest within a week, crops under
// their stock threshold, and batches expiring within two weeks.
func (s *Service) Current() (*Digest, error) {
	d := &Digest{}

	due, err := s.crops.FieldsDueWithin(7)
	if err != nil {
		return nil, err
	}
	d.UpcomingHarvests = due

	stocks, err := s.inv.TotalsByCrop()
	if err != nil {
		return nil, err
	}
	for _, st := range stocks {
		if st.Tons < st.MinStockTons {
			d.LowInventory = append(d.LowInventory, st)
		}
	}

	expiring, err := s.inv.ExpiredItems(time.Now().AddDate(0, 0, 14))
	if err != nil {
		return nil, err
	}
	d.ExpiringBatches = expiring

	d.NotificationCount = len(d.UpcomingHarvests) + len(d.LowInventory) + len(d.ExpiringBatches)
	return d, nil
}
