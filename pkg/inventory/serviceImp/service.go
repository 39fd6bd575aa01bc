package serviceImp

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"harvestpro/entities"
	croprepo "harvestpro/pkg/crop/repository"
	"harvestpro/pkg/inventory/repository"
	svc "harvestpro/pkg/inventory/service"
)

type service struct {
	repo  repository.InventoryRepository
	crops croprepo.CropRepository
}

func New(repo repository.InventoryRepository, crops croprepo.CropRepository) svc.Service {
	return &service{repo: repo, crops: crops}
}

func (s *service) Add(in svc.AddItemInput) (*entities.InventoryItem, error) {
	if in.QuantityTons <= 0 {
		return nil, errors.New("quantity_tons must be positive")
	}
	if !entities.ValidGrade(in.QualityGrade) {
		return nil, errors.New("quality_grade must be A..D")
	}
	crop, err := s.crops.FindByID(in.CropID)
	if err != nil {
		return nil, errors.New("unknown crop")
	}
	loc, err := s.repo.FindLocation(in.LocationID)
	if err != nil {
		return nil, errors.New("unknown storage location")
	}
	stored, err := s.repo.SumTonsAtLocation(in.LocationID)
	if err != nil {
		return nil, err
	}
	if loc.CapacityTons > 0 && stored+in.QuantityTons > loc.CapacityTons {
		return nil, svc.ErrOverCapacity
	}
	expiry := in.ExpiryDate
	if expiry.IsZero() {
		expiry = time.Now().AddDate(0, 0, crop.ShelfLifeDays)
	}
	it := &entities.InventoryItem{
		CropID:       in.CropID,
		LocationID:   in.LocationID,
		QuantityTons: in.QuantityTons,
		QualityGrade: in.QualityGrade,
		BatchNo:      uuid.NewString(),
		DateStored:   time.Now(),
		ExpiryDate:   expiry,
		AddedBy:      in.AddedBy,
	}
	err = s.repo.InTx(func(r repository.InventoryRepository) error {
		if err := r.CreateItem(it); err != nil {
			return err
		}
		return r.CreateTx(&entities.InventoryTransaction{
			ItemID: it.ID, Action: entities.TxAdd, QuantityTons: in.QuantityTons,
			PerformedBy: in.AddedBy, Notes: "stored batch " + it.BatchNo,
		})
	})
	if err != nil {
		return nil, err
	}
	return it, nil
}

func (s *service) Remove(itemID uint, tons float64, by uint, notes string) (*entities.InventoryItem, error) {
	if tons <= 0 {
		return nil, errors.New("quantity_tons must be positive")
	}
	it, err := s.repo.FindItem(itemID)
	if err != nil {
		return nil, err
	}
	if tons > it.QuantityTons {
		return nil, svc.ErrInsufficientStock
	}
	it.QuantityTons -= tons
	err = s.repo.InTx(func(r repository.InventoryRepository) error {
		if err := r.SaveItem(it); err != nil {
			return err
		}
		return r.CreateTx(&entities.InventoryTransaction{
			ItemID: it.ID, Action: entities.TxRemove, QuantityTons: tons,
			PerformedBy: by, Notes: notes,
		})
	})
	if err != nil {
		return nil, err
	}
	return it, nil
}

func (s *service) Adjust(itemID uint, tons float64, by uint, notes string) (*entities.InventoryItem, error) {
	if tons < 0 {
		return nil, errors.New("quantity_tons must not be negative")
	}
	it, err := s.repo.FindItem(itemID)
	if err != nil {
		return nil, err
	}
	delta := tons - it.QuantityTons
	it.QuantityTons = tons
	err = s.repo.InTx(func(r repository.InventoryRepository) error {
		if err := r.SaveItem(it); err != nil {
			return err
		}
		return r.CreateTx(&entities.InventoryTransaction{
			ItemID: it.ID, Action: entities.TxAdjust, QuantityTons: delta,
			PerformedBy: by, Notes: notes,
		})
	})
	if err != nil {
		return nil, err
	}
	return it, nil
}

func (s *service) ExpireDue(now time.Time, by uint) (int, error) {
	items, err := s.repo.ExpiredItems(now)
	if err != nil {
		return 0, err
	}
	swept := 0
	err = s.repo.InTx(func(r repository.InventoryRepository) error {
		for i := range items {
			it := &items[i]
			qty := it.QuantityTons
			it.QuantityTons = 0
			if err := r.SaveItem(it); err != nil {
				return err
			}
			ledger := &entities.InventoryTransaction{
				ItemID: it.ID, Action: entities.TxExpired, QuantityTons: qty,
				PerformedBy: by, Notes: fmt.Sprintf("expired on %s", it.ExpiryDate.Format("2006-01-02")),
			}
			if err := r.CreateTx(ledger); err != nil {
				return err
			}
			swept++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return swept, nil
}

func (s *service) ListItems() ([]entities.InventoryItem, float64, []repository.CropStock, error) {
	items, err := s.repo.ListItems()
	if err != nil {
		return nil, 0, nil, err
	}
	total, err := s.repo.SumTons()
	if err != nil {
		return nil, 0, nil, err
	}
	byCrop, err := s.repo.TotalsByCrop()
	if err != nil {
		return nil, 0, nil, err
	}
	return items, total, byCrop, nil
}

func (s *service) Alerts(now time.Time, window time.Duration) ([]repository.CropStock, []entities.InventoryItem, error) {
	byCrop, err := s.repo.TotalsByCrop()
	if err != nil {
		return nil, nil, err
	}
	low := make([]repository.CropStock, 0)
	for _, cs := range byCrop {
		if cs.Tons < cs.MinStockTons {
			low = append(low, cs)
		}
	}
	expiring, err := s.repo.ExpiredItems(now.Add(window))
	if err != nil {
		return nil, nil, err
	}
	return low, expiring, nil
}

func (s *service) Transactions(limit int) ([]entities.InventoryTransaction, error) {
	return s.repo.ListTx(limit)
}

func (s *service) AddLocation(l *entities.StorageLocation) error {
	if l.Name == "" || l.Code == "" {
		return errors.New("name and code are required")
	}
	l.IsActive = true
	return s.repo.CreateLocation(l)
}

func (s *service) ListLocations() ([]entities.StorageLocation, error) {
	return s.repo.ListLocations()
}
