package repositoryImp

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"harvestpro/entities"
	"harvestpro/pkg/harvest/repository"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.Crop{}, &entities.Field{}, &entities.HarvestRecord{},
	))
	return db
}

func seed(t *testing.T, db *gorm.DB) (fieldMaize, fieldWheat uint) {
	t.Helper()
	maize := entities.Crop{Name: "maize"}
	wheat := entities.Crop{Name: "wheat"}
	require.NoError(t, db.Create(&maize).Error)
	require.NoError(t, db.Create(&wheat).Error)

	f1 := entities.Field{FarmID: 1, Name: "A1", CropID: maize.CropID, AreaHa: 10}
	f2 := entities.Field{FarmID: 2, Name: "B1", CropID: wheat.CropID, AreaHa: 8}
	require.NoError(t, db.Create(&f1).Error)
	require.NoError(t, db.Create(&f2).Error)
	return f1.FieldID, f2.FieldID
}

func mkRecord(fieldID uint, y int, m time.Month, d int, tons float64, grade string) entities.HarvestRecord {
	return entities.HarvestRecord{
		FieldID:      fieldID,
		HarvestDate:  time.Date(y, m, d, 12, 0, 0, 0, time.UTC),
		QuantityTons: tons,
		QualityGrade: grade,
	}
}

func TestQueryFilters(t *testing.T) {
	db := testDB(t)
	r := New(db)
	f1, f2 := seed(t, db)

	require.NoError(t, r.Create(&entities.HarvestRecord{FieldID: f1, HarvestDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), QuantityTons: 5, QualityGrade: "A"}))
	require.NoError(t, r.Create(&entities.HarvestRecord{FieldID: f1, HarvestDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), QuantityTons: 3, QualityGrade: "B"}))
	require.NoError(t, r.Create(&entities.HarvestRecord{FieldID: f2, HarvestDate: time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC), QuantityTons: 7, QualityGrade: "A"}))

	out, err := r.Query(repository.HarvestFilter{FieldID: f1})
	require.NoError(t, err)
	assert.Len(t, out, 2)

	out, err = r.Query(repository.HarvestFilter{Grade: "A"})
	require.NoError(t, err)
	assert.Len(t, out, 2)

	out, err = r.Query(repository.HarvestFilter{FarmID: 2})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 7.0, out[0].QuantityTons)

	// half-open range: To is excluded, so the April 2 record stays out
	out, err = r.Query(repository.HarvestFilter{
		From: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 3.0, out[0].QuantityTons)
}

func TestSums(t *testing.T) {
	db := testDB(t)
	r := New(db)
	f1, _ := seed(t, db)

	// empty DB sums to zero, not an error
	tons, err := r.SumTons()
	require.NoError(t, err)
	assert.Zero(t, tons)

	require.NoError(t, r.Create(&entities.HarvestRecord{FieldID: f1, HarvestDate: time.Now(), QuantityTons: 2.5, QualityGrade: "C"}))
	require.NoError(t, r.Create(&entities.HarvestRecord{FieldID: f1, HarvestDate: time.Now(), QuantityTons: 1.5, QualityGrade: "C"}))

	tons, err = r.SumTons()
	require.NoError(t, err)
	assert.Equal(t, 4.0, tons)

	n, err := r.CountSince(time.Now().AddDate(0, 0, -1))
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	byFarm, err := r.SumTonsByFarm(1)
	require.NoError(t, err)
	assert.Equal(t, 4.0, byFarm)

	byFarm, err = r.SumTonsByFarm(2)
	require.NoError(t, err)
	assert.Zero(t, byFarm)
}

func TestMonthlyTotalsAndCounts(t *testing.T) {
	db := testDB(t)
	r := New(db)
	f1, f2 := seed(t, db)

	require.NoError(t, r.Create(ptr(mkRecord(f1, 2025, time.January, 10, 4, "A"))))
	require.NoError(t, r.Create(ptr(mkRecord(f1, 2025, time.January, 20, 6, "B"))))
	require.NoError(t, r.Create(ptr(mkRecord(f2, 2025, time.July, 5, 9, "A"))))
	require.NoError(t, r.Create(ptr(mkRecord(f2, 2024, time.July, 5, 100, "A")))) // other year

	totals, err := r.MonthlyTotals(2025)
	require.NoError(t, err)
	assert.Equal(t, 10.0, totals[0])
	assert.Equal(t, 9.0, totals[6])
	assert.Zero(t, totals[3])

	counts, err := r.MonthlyCounts(2025)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[0])
	assert.Equal(t, int64(1), counts[6])
}

func TestTotalsByCrop(t *testing.T) {
	db := testDB(t)
	r := New(db)
	f1, f2 := seed(t, db)

	require.NoError(t, r.Create(ptr(mkRecord(f1, 2025, time.May, 1, 3, "A"))))
	require.NoError(t, r.Create(ptr(mkRecord(f2, 2025, time.May, 2, 12, "A"))))

	out, err := r.TotalsByCrop()
	require.NoError(t, err)
	require.Len(t, out, 2)
	// ordered by tons desc
	assert.Equal(t, "wheat", out[0].CropName)
	assert.Equal(t, 12.0, out[0].Tons)
	assert.Equal(t, "maize", out[1].CropName)
	assert.Equal(t, 3.0, out[1].Tons)
}

func TestSumTonsBetween(t *testing.T) {
	db := testDB(t)
	r := New(db)
	f1, _ := seed(t, db)

	require.NoError(t, r.Create(ptr(mkRecord(f1, 2025, time.June, 1, 2, "A"))))
	require.NoError(t, r.Create(ptr(mkRecord(f1, 2025, time.June, 29, 3, "A"))))
	require.NoError(t, r.Create(ptr(mkRecord(f1, 2025, time.July, 1, 5, "A"))))

	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	tons, count, err := r.SumTonsBetween(from, to)
	require.NoError(t, err)
	assert.Equal(t, 5.0, tons)
	assert.Equal(t, int64(2), count)
}

func ptr(h entities.HarvestRecord) *entities.HarvestRecord { return &h }
