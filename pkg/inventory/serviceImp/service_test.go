package serviceImp

import (
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"harvestpro/entities"
	cropRepoImp "harvestpro/pkg/crop/repositoryImp"
	"harvestpro/pkg/inventory/repository"
	invRepoImp "harvestpro/pkg/inventory/repositoryImp"
	svc "harvestpro/pkg/inventory/service"
)

func setup(t *testing.T) (svc.Service, *gorm.DB, uint, uint) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.Crop{}, &entities.StorageLocation{},
		&entities.InventoryItem{}, &entities.InventoryTransaction{},
	))

	crop := entities.Crop{Name: "rice", ShelfLifeDays: 90, MinStockTons: 50}
	require.NoError(t, db.Create(&crop).Error)
	loc := entities.StorageLocation{Name: "Warehouse A", Code: "WH-A", CapacityTons: 100, IsActive: true}
	require.NoError(t, db.Create(&loc).Error)

	s := New(invRepoImp.New(db), cropRepoImp.New(db))
	return s, db, crop.CropID, loc.ID
}

func TestAddItem(t *testing.T) {
	s, db, cropID, locID := setup(t)

	it, err := s.Add(svc.AddItemInput{
		CropID: cropID, LocationID: locID, QuantityTons: 20, QualityGrade: "A", AddedBy: 5,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, it.BatchNo)
	assert.Equal(t, 20.0, it.QuantityTons)
	// expiry defaulted from the crop shelf life
	wantExpiry := time.Now().AddDate(0, 0, 90)
	assert.WithinDuration(t, wantExpiry, it.ExpiryDate, time.Hour)

	var ledger []entities.InventoryTransaction
	require.NoError(t, db.Find(&ledger).Error)
	require.Len(t, ledger, 1)
	assert.Equal(t, entities.TxAdd, ledger[0].Action)
	assert.Equal(t, 20.0, ledger[0].QuantityTons)
	assert.Equal(t, uint(5), ledger[0].PerformedBy)
}

func TestAddValidation(t *testing.T) {
	s, _, cropID, locID := setup(t)

	_, err := s.Add(svc.AddItemInput{CropID: cropID, LocationID: locID, QuantityTons: 0, QualityGrade: "A"})
	assert.Error(t, err)

	_, err = s.Add(svc.AddItemInput{CropID: cropID, LocationID: locID, QuantityTons: 5, QualityGrade: "X"})
	assert.Error(t, err)

	_, err = s.Add(svc.AddItemInput{CropID: 999, LocationID: locID, QuantityTons: 5, QualityGrade: "A"})
	assert.Error(t, err)

	_, err = s.Add(svc.AddItemInput{CropID: cropID, LocationID: 999, QuantityTons: 5, QualityGrade: "A"})
	assert.Error(t, err)
}

func TestAddOverCapacity(t *testing.T) {
	s, _, cropID, locID := setup(t)

	_, err := s.Add(svc.AddItemInput{CropID: cropID, LocationID: locID, QuantityTons: 80, QualityGrade: "A"})
	require.NoError(t, err)

	_, err = s.Add(svc.AddItemInput{CropID: cropID, LocationID: locID, QuantityTons: 30, QualityGrade: "A"})
	assert.ErrorIs(t, err, svc.ErrOverCapacity)
}

func TestRemove(t *testing.T) {
	s, db, cropID, locID := setup(t)

	it, err := s.Add(svc.AddItemInput{CropID: cropID, LocationID: locID, QuantityTons: 30, QualityGrade: "B", AddedBy: 1})
	require.NoError(t, err)

	got, err := s.Remove(it.ID, 12, 2, "shipped to market")
	require.NoError(t, err)
	assert.Equal(t, 18.0, got.QuantityTons)

	_, err = s.Remove(it.ID, 100, 2, "")
	assert.ErrorIs(t, err, svc.ErrInsufficientStock)

	// zero-quantity batch stays on record
	_, err = s.Remove(it.ID, 18, 2, "")
	require.NoError(t, err)
	var still entities.InventoryItem
	require.NoError(t, db.First(&still, it.ID).Error)
	assert.Zero(t, still.QuantityTons)

	var ledger []entities.InventoryTransaction
	require.NoError(t, db.Where("action = ?", entities.TxRemove).Find(&ledger).Error)
	assert.Len(t, ledger, 2)
}

func TestAdjustRecordsDelta(t *testing.T) {
	s, db, cropID, locID := setup(t)

	it, err := s.Add(svc.AddItemInput{CropID: cropID, LocationID: locID, QuantityTons: 40, QualityGrade: "A"})
	require.NoError(t, err)

	got, err := s.Adjust(it.ID, 35, 3, "recount")
	require.NoError(t, err)
	assert.Equal(t, 35.0, got.QuantityTons)

	var tx entities.InventoryTransaction
	require.NoError(t, db.Where("action = ?", entities.TxAdjust).First(&tx).Error)
	assert.Equal(t, -5.0, tx.QuantityTons)
}

func TestExpireDue(t *testing.T) {
	s, db, cropID, locID := setup(t)

	past := time.Now().AddDate(0, 0, -1)
	future := time.Now().AddDate(0, 0, 30)
	fresh, err := s.Add(svc.AddItemInput{CropID: cropID, LocationID: locID, QuantityTons: 10, QualityGrade: "A", ExpiryDate: future})
	require.NoError(t, err)
	stale, err := s.Add(svc.AddItemInput{CropID: cropID, LocationID: locID, QuantityTons: 10, QualityGrade: "A", ExpiryDate: past})
	require.NoError(t, err)

	n, err := s.ExpireDue(time.Now(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	var got entities.InventoryItem
	require.NoError(t, db.First(&got, stale.ID).Error)
	assert.Zero(t, got.QuantityTons)
	var gotFresh entities.InventoryItem
	require.NoError(t, db.First(&gotFresh, fresh.ID).Error)
	assert.Equal(t, 10.0, gotFresh.QuantityTons)

	// sweep again: nothing left to do
	n, err = s.ExpireDue(time.Now(), 1)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestListItemsGroupsByCrop(t *testing.T) {
	s, db, cropID, locID := setup(t)

	other := entities.Crop{Name: "yam", MinStockTons: 10}
	require.NoError(t, db.Create(&other).Error)

	_, err := s.Add(svc.AddItemInput{CropID: cropID, LocationID: locID, QuantityTons: 30, QualityGrade: "A"})
	require.NoError(t, err)
	_, err = s.Add(svc.AddItemInput{CropID: other.CropID, LocationID: locID, QuantityTons: 5, QualityGrade: "C"})
	require.NoError(t, err)

	items, total, byCrop, err := s.ListItems()
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, 35.0, total)
	require.Len(t, byCrop, 2)
	assert.Equal(t, "rice", byCrop[0].CropName)
	assert.Equal(t, 30.0, byCrop[0].Tons)
}

func TestAlerts(t *testing.T) {
	s, _, cropID, locID := setup(t)

	soon := time.Now().AddDate(0, 0, 5)
	_, err := s.Add(svc.AddItemInput{CropID: cropID, LocationID: locID, QuantityTons: 30, QualityGrade: "A", ExpiryDate: soon})
	require.NoError(t, err)

	low, expiring, err := s.Alerts(time.Now(), 14*24*time.Hour)
	require.NoError(t, err)
	// 30t of rice against a 50t floor
	require.Len(t, low, 1)
	assert.Equal(t, "rice", low[0].CropName)
	require.Len(t, expiring, 1)
	assert.Equal(t, 30.0, expiring[0].QuantityTons)
}

// brokenLedgerRepo fails every ledger write while delegating the rest.
type brokenLedgerRepo struct {
	repository.InventoryRepository
}

func (b *brokenLedgerRepo) InTx(fn func(repository.InventoryRepository) error) error {
	return b.InventoryRepository.InTx(func(r repository.InventoryRepository) error {
		return fn(&brokenLedgerRepo{InventoryRepository: r})
	})
}

func (b *brokenLedgerRepo) CreateTx(tx *entities.InventoryTransaction) error {
	return errors.New("ledger write failed")
}

func TestRemoveRollsBackWhenLedgerFails(t *testing.T) {
	s, db, cropID, locID := setup(t)

	it, err := s.Add(svc.AddItemInput{CropID: cropID, LocationID: locID, QuantityTons: 20, QualityGrade: "A"})
	require.NoError(t, err)

	broken := New(&brokenLedgerRepo{InventoryRepository: invRepoImp.New(db)}, cropRepoImp.New(db))
	_, err = broken.Remove(it.ID, 5, 1, "spill")
	require.Error(t, err)

	// stock and ledger both untouched
	var got entities.InventoryItem
	require.NoError(t, db.First(&got, it.ID).Error)
	assert.Equal(t, 20.0, got.QuantityTons)
	var n int64
	require.NoError(t, db.Model(&entities.InventoryTransaction{}).Count(&n).Error)
	assert.Equal(t, int64(1), n) // just the original add
}
