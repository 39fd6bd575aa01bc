package repositoryImp

import (
	"gorm.io/gorm"

	"harvestpro/entities"
	"harvestpro/pkg/farm/repository"
)

type farmRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FarmRepository { return &farmRepo{db} }

func (r *farmRepo) Create(f *entities.Farm) error { return r.db.Create(f).Error }

func (r *farmRepo) FindByID(id uint) (*entities.Farm, error) {
	var f entities.Farm
	if err := r.db.First(&f, "farm_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *farmRepo) List(activeOnly bool) ([]entities.Farm, error) {
	var out []entities.Farm
	q := r.db.Order("created_at DESC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *farmRepo) Save(f *entities.Farm) error { return r.db.Save(f).Error }

func (r *farmRepo) Deactivate(id uint) error {
	return r.db.Model(&entities.Farm{}).Where("farm_id = ?", id).Update("is_active", false).Error
}

func (r *farmRepo) Stats(farmID uint) (*repository.FarmStats, error) {
	st := repository.FarmStats{FarmID: farmID}
	if err := r.db.Model(&entities.Field{}).Where("farm_id = ?", farmID).Count(&st.FieldCount).Error; err != nil {
		return nil, err
	}
	var area *float64
	if err := r.db.Model(&entities.Field{}).Where("farm_id = ?", farmID).
		Select("SUM(area_ha)").Scan(&area).Error; err != nil {
		return nil, err
	}
	if area != nil {
		st.TotalAreaHa = *area
	}
	var tons *float64
	if err := r.db.Model(&entities.HarvestRecord{}).
		Joins("JOIN fields ON fields.field_id = harvest_records.field_id").
		Where("fields.farm_id = ?", farmID).
		Select("SUM(harvest_records.quantity_tons)").Scan(&tons).Error; err != nil {
		return nil, err
	}
	if tons != nil {
		st.HarvestedTons = *tons
	}
	return &st, nil
}
