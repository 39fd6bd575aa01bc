package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"harvestpro/entities"
	harvRepoImp "harvestpro/pkg/harvest/repositoryImp"
	invRepoImp "harvestpro/pkg/inventory/repositoryImp"
)

func setup(t *testing.T) (*Generator, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.Crop{}, &entities.Field{}, &entities.HarvestRecord{},
		&entities.StorageLocation{}, &entities.InventoryItem{},
	))
	return NewGenerator(harvRepoImp.New(db), invRepoImp.New(db)), db
}

func reopen(t *testing.T, f *excelize.File) *excelize.File {
	t.Helper()
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	out, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	return out
}

func TestHarvestMonthly(t *testing.T) {
	g, db := setup(t)

	crop := entities.Crop{Name: "corn"}
	require.NoError(t, db.Create(&crop).Error)
	field := entities.Field{FarmID: 1, Name: "F1", CropID: crop.CropID, AreaHa: 5}
	require.NoError(t, db.Create(&field).Error)

	ref := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&entities.HarvestRecord{
		FieldID: field.FieldID, HarvestDate: time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
		QuantityTons: 8, QualityGrade: "A", Notes: "first cut",
	}).Error)
	require.NoError(t, db.Create(&entities.HarvestRecord{
		FieldID: field.FieldID, HarvestDate: time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC),
		QuantityTons: 6, QualityGrade: "B",
	}).Error)

	f, err := g.HarvestMonthly(ref)
	require.NoError(t, err)
	wb := reopen(t, f)
	defer wb.Close()

	get := func(sheet, cell string) string {
		v, err := wb.GetCellValue(sheet, cell)
		require.NoError(t, err)
		return v
	}
	assert.Equal(t, "June 2025", get("Summary", "A5"))
	assert.Equal(t, "1", get("Summary", "B5"))
	assert.Equal(t, "8", get("Summary", "C5"))
	assert.Equal(t, "May 2025", get("Summary", "A6"))
	assert.Equal(t, "6", get("Summary", "C6"))
	assert.Equal(t, "2", get("Summary", "C7")) // month over month change

	assert.Equal(t, "Quantity (t)", get("Records", "D1"))
	assert.Equal(t, "2025-06-03", get("Records", "C2"))
	assert.Equal(t, "first cut", get("Records", "G2"))
	// previous month's record is not listed
	assert.Empty(t, get("Records", "A3"))
}

func TestHarvestMonthlyLastDayOfMonth(t *testing.T) {
	g, db := setup(t)

	crop := entities.Crop{Name: "corn"}
	require.NoError(t, db.Create(&crop).Error)
	field := entities.Field{FarmID: 1, Name: "F1", CropID: crop.CropID, AreaHa: 5}
	require.NoError(t, db.Create(&field).Error)

	// noon on the last day, like records created with a time.Now() default
	require.NoError(t, db.Create(&entities.HarvestRecord{
		FieldID: field.FieldID, HarvestDate: time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC),
		QuantityTons: 4, QualityGrade: "A",
	}).Error)

	f, err := g.HarvestMonthly(time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	wb := reopen(t, f)
	defer wb.Close()

	get := func(sheet, cell string) string {
		v, err := wb.GetCellValue(sheet, cell)
		require.NoError(t, err)
		return v
	}
	// summary and records sheets agree on the month's records
	assert.Equal(t, "1", get("Summary", "B5"))
	assert.Equal(t, "2025-06-30", get("Records", "C2"))
	assert.Equal(t, "4", get("Records", "D2"))
}

func TestInventorySnapshot(t *testing.T) {
	g, db := setup(t)

	crop := entities.Crop{Name: "rice", MinStockTons: 100}
	require.NoError(t, db.Create(&crop).Error)
	loc := entities.StorageLocation{Name: "WH", Code: "WH-1", IsActive: true}
	require.NoError(t, db.Create(&loc).Error)
	require.NoError(t, db.Create(&entities.InventoryItem{
		CropID: crop.CropID, LocationID: loc.ID, QuantityTons: 40, QualityGrade: "A",
		BatchNo: "batch-1", DateStored: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		ExpiryDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	}).Error)

	f, err := g.InventorySnapshot()
	require.NoError(t, err)
	wb := reopen(t, f)
	defer wb.Close()

	get := func(sheet, cell string) string {
		v, err := wb.GetCellValue(sheet, cell)
		require.NoError(t, err)
		return v
	}
	assert.Equal(t, "rice", get("Stock", "A2"))
	assert.Equal(t, "40", get("Stock", "B2"))
	assert.Equal(t, "LOW", get("Stock", "E2")) // 40 < min 100

	assert.Equal(t, "batch-1", get("Batches", "A2"))
	assert.Equal(t, "2026-02-01", get("Batches", "G2"))
}
