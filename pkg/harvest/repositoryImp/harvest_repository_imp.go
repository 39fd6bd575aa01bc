package repositoryImp

import (
	"time"

	"gorm.io/gorm"

	"harvestpro/entities"
	"harvestpro/pkg/harvest/repository"
)

type harvestRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.HarvestRepository { return &harvestRepo{db} }

func (r *harvestRepo) Create(h *entities.HarvestRecord) error { return r.db.Create(h).Error }

func (r *harvestRepo) ListByField(fieldID uint, limit int) ([]entities.HarvestRecord, error) {
	var out []entities.HarvestRecord
	q := r.db.Where("field_id = ?", fieldID).Order("harvest_date DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *harvestRepo) Query(f repository.HarvestFilter) ([]entities.HarvestRecord, error) {
	q := r.db.Model(&entities.HarvestRecord{})
	if f.FieldID != 0 {
		q = q.Where("field_id = ?", f.FieldID)
	}
	if f.FarmID != 0 {
		q = q.Joins("JOIN fields ON fields.field_id = harvest_records.field_id").
			Where("fields.farm_id = ?", f.FarmID)
	}
	if f.Grade != "" {
		q = q.Where("quality_grade = ?", f.Grade)
	}
	if !f.From.IsZero() {
		q = q.Where("harvest_date >= ?", f.From)
	}
	if !f.To.IsZero() {
		q = q.Where("harvest_date < ?", f.To)
	}
	if f.Limit <= 0 {
		f.Limit = 50
	}
	var out []entities.HarvestRecord
	if err := q.Order("harvest_date DESC").Limit(f.Limit).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *harvestRepo) Count() (int64, error) {
	var n int64
	return n, r.db.Model(&entities.HarvestRecord{}).Count(&n).Error
}

func (r *harvestRepo) CountSince(t time.Time) (int64, error) {
	var n int64
	return n, r.db.Model(&entities.HarvestRecord{}).Where("harvest_date >= ?", t).Count(&n).Error
}

func (r *harvestRepo) SumTons() (float64, error) {
	var v *float64
	if err := r.db.Model(&entities.HarvestRecord{}).Select("SUM(quantity_tons)").Scan(&v).Error; err != nil {
		return 0, err
	}
	if v == nil {
		return 0, nil
	}
	return *v, nil
}

func (r *harvestRepo) SumTonsBetween(from, to time.Time) (float64, int64, error) {
	q := r.db.Model(&entities.HarvestRecord{}).Where("harvest_date >= ? AND harvest_date < ?", from, to)
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return 0, 0, err
	}
	var v *float64
	if err := q.Select("SUM(quantity_tons)").Scan(&v).Error; err != nil {
		return 0, 0, err
	}
	tons := 0.0
	if v != nil {
		tons = *v
	}
	return tons, n, nil
}

func (r *harvestRepo) SumTonsByFarm(farmID uint) (float64, error) {
	var v *float64
	if err := r.db.Model(&entities.HarvestRecord{}).
		Joins("JOIN fields ON fields.field_id = harvest_records.field_id").
		Where("fields.farm_id = ?", farmID).
		Select("SUM(harvest_records.quantity_tons)").Scan(&v).Error; err != nil {
		return 0, err
	}
	if v == nil {
		return 0, nil
	}
	return *v, nil
}

func (r *harvestRepo) HarvestedAreaHa() (float64, error) {
	var v *float64
	harvested := r.db.Model(&entities.HarvestRecord{}).Distinct("field_id")
	if err := r.db.Model(&entities.Field{}).
		Where("field_id IN (?)", harvested).
		Select("SUM(area_ha)").Scan(&v).Error; err != nil {
		return 0, err
	}
	if v == nil {
		return 0, nil
	}
	return *v, nil
}

func (r *harvestRepo) MonthlyTotals(year int) ([12]float64, error) {
	var totals [12]float64
	type row struct {
		Month string
		Tons  float64
	}
	var rows []row
	// strftime works on both the DATETIME strings gorm writes and plain dates
	if err := r.db.Model(&entities.HarvestRecord{}).
		Select(`strftime('%m', harvest_date) AS month, SUM(quantity_tons) AS tons`).
		Where(`strftime('%Y', harvest_date) = ?`, formatYear(year)).
		Group("month").Scan(&rows).Error; err != nil {
		return totals, err
	}
	for _, rw := range rows {
		if m := monthIndex(rw.Month); m >= 0 {
			totals[m] = rw.Tons
		}
	}
	return totals, nil
}

func (r *harvestRepo) MonthlyCounts(year int) ([12]int64, error) {
	var counts [12]int64
	type row struct {
		Month string
		N     int64
	}
	var rows []row
	if err := r.db.Model(&entities.HarvestRecord{}).
		Select(`strftime('%m', harvest_date) AS month, COUNT(*) AS n`).
		Where(`strftime('%Y', harvest_date) = ?`, formatYear(year)).
		Group("month").Scan(&rows).Error; err != nil {
		return counts, err
	}
	for _, rw := range rows {
		if m := monthIndex(rw.Month); m >= 0 {
			counts[m] = rw.N
		}
	}
	return counts, nil
}

func (r *harvestRepo) TotalsByCrop() ([]repository.CropTotal, error) {
	var out []repository.CropTotal
	if err := r.db.Model(&entities.HarvestRecord{}).
		Select("crops.name AS crop_name, SUM(harvest_records.quantity_tons) AS tons").
		Joins("JOIN fields ON fields.field_id = harvest_records.field_id").
		Joins("JOIN crops ON crops.crop_id = fields.crop_id").
		Group("crops.name").Order("tons DESC").Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func formatYear(y int) string {
	return time.Date(y, 1, 1, 0, 0, 0, 0, time.UTC).Format("2006")
}

func monthIndex(mm string) int {
	t, err := time.Parse("01", mm)
	if err != nil {
		return -1
	}
	return int(t.Month()) - 1
}
