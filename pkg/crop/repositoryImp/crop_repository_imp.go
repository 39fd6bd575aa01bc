package repositoryImp

import (
	"time"

	"gorm.io/gorm"

	"harvestpro/entities"
	"harvestpro/pkg/crop/repository"
)

type cropRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CropRepository { return &cropRepo{db} }

func (r *cropRepo) Create(cr *entities.Crop) error { return r.db.Create(cr).Error }

func (r *cropRepo) FindByID(id uint) (*entities.Crop, error) {
	var cr entities.Crop
	if err := r.db.First(&cr, "crop_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &cr, nil
}

func (r *cropRepo) List() ([]entities.Crop, error) {
	var out []entities.Crop
	if err := r.db.Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *cropRepo) Save(cr *entities.Crop) error { return r.db.Save(cr).Error }

func (r *cropRepo) CreateField(f *entities.Field) error { return r.db.Create(f).Error }

func (r *cropRepo) FindField(id uint) (*entities.Field, error) {
	var f entities.Field
	if err := r.db.First(&f, "field_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *cropRepo) ListFieldsByFarm(farmID uint) ([]entities.Field, error) {
	var out []entities.Field
	if err := r.db.Where("farm_id = ?", farmID).Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *cropRepo) FieldsDueWithin(days int) ([]entities.Field, error) {
	now := time.Now()
	until := now.AddDate(0, 0, days)
	var out []entities.Field
	if err := r.db.Where("expected_harvest_date >= ? AND expected_harvest_date <= ?", now, until).
		Order("expected_harvest_date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
