package report

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	harvestrepo "harvestpro/pkg/harvest/repository"
	invrepo "harvestpro/pkg/inventory/repository"
)

// Generator renders the downloadable XLSX reports from live data.
type Generator struct {
	harvests harvestrepo.HarvestRepository
	inv      invrepo.InventoryRepository
}

func NewGenerator(h harvestrepo.HarvestRepository, inv invrepo.InventoryRepository) *Generator {
	return &Generator{harvests: h, inv: inv}
}

// HarvestMonthly builds the month-over-month harvest report for the
// month containing ref: a summary sheet comparing the current and
// previous month, and a sheet listing the month's records.
func (g *Generator) HarvestMonthly(ref time.Time) (*excelize.File, error) {
	curStart := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	nextStart := curStart.AddDate(0, 1, 0)
	prevStart := curStart.AddDate(0, -1, 0)

	curTons, curCount, err := g.harvests.SumTonsBetween(curStart, nextStart)
	if err != nil {
		return nil, err
	}
	prevTons, prevCount, err := g.harvests.SumTonsBetween(prevStart, curStart)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	const summary = "Sheet1"
	if err := f.SetSheetName(summary, "Summary"); err != nil {
		return nil, err
	}

	head, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	set := func(sheet, cell string, v any) {
		_ = f.SetCellValue(sheet, cell, v)
	}
	set("Summary", "A1", "Harvest report")
	set("Summary", "A2", "Generated")
	set("Summary", "B2", time.Now().Format("2006-01-02 15:04"))
	set("Summary", "A4", "Month")
	set("Summary", "B4", "Records")
	set("Summary", "C4", "Total (t)")
	set("Summary", "A5", curStart.Format("January 2006"))
	set("Summary", "B5", curCount)
	set("Summary", "C5", curTons)
	set("Summary", "A6", prevStart.Format("January 2006"))
	set("Summary", "B6", prevCount)
	set("Summary", "C6", prevTons)
	set("Summary", "A7", "Change (t)")
	set("Summary", "C7", curTons-prevTons)
	_ = f.SetCellStyle("Summary", "A1", "C1", head)
	_ = f.SetCellStyle("Summary", "A4", "C4", head)

	records, err := g.harvests.Query(harvestrepo.HarvestFilter{
		From: curStart, To: nextStart, Limit: 10000,
	})
	if err != nil {
		return nil, err
	}
	const rs = "Records"
	if _, err := f.NewSheet(rs); err != nil {
		return nil, err
	}
	cols := []string{"Record", "Field", "Date", "Quantity (t)", "Grade", "Harvested by", "Notes"}
	for i, c := range cols {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(rs, cell, c)
	}
	_ = f.SetCellStyle(rs, "A1", "G1", head)
	for i, r := range records {
		row := i + 2
		set(rs, fmt.Sprintf("A%d", row), r.RecordID)
		set(rs, fmt.Sprintf("B%d", row), r.FieldID)
		set(rs, fmt.Sprintf("C%d", row), r.HarvestDate.Format("2006-01-02"))
		set(rs, fmt.Sprintf("D%d", row), r.QuantityTons)
		set(rs, fmt.Sprintf("E%d", row), r.QualityGrade)
		set(rs, fmt.Sprintf("F%d", row), r.HarvestedBy)
		set(rs, fmt.Sprintf("G%d", row), r.Notes)
	}
	_ = f.SetColWidth(rs, "C", "C", 12)
	_ = f.SetColWidth(rs, "G", "G", 40)
	return f, nil
}

// InventorySnapshot builds the current stock report: per-crop totals with
// low-stock flags, and every stored batch.
func (g *Generator) InventorySnapshot() (*excelize.File, error) {
	stocks, err := g.inv.TotalsByCrop()
	if err != nil {
		return nil, err
	}
	items, err := g.inv.ListItems()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", "Stock"); err != nil {
		return nil, err
	}
	head, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	set := func(sheet, cell string, v any) {
		_ = f.SetCellValue(sheet, cell, v)
	}
	set("Stock", "A1", "Crop")
	set("Stock", "B1", "Tons")
	set("Stock", "C1", "Batches")
	set("Stock", "D1", "Min stock (t)")
	set("Stock", "E1", "Low stock")
	_ = f.SetCellStyle("Stock", "A1", "E1", head)
	for i, st := range stocks {
		row := i + 2
		set("Stock", fmt.Sprintf("A%d", row), st.CropName)
		set("Stock", fmt.Sprintf("B%d", row), st.Tons)
		set("Stock", fmt.Sprintf("C%d", row), st.ItemCount)
		set("Stock", fmt.Sprintf("D%d", row), st.MinStockTons)
		low := ""
		if st.Tons < st.MinStockTons {
			low = "LOW"
		}
		set("Stock", fmt.Sprintf("E%d", row), low)
	}

	const bs = "Batches"
	if _, err := f.NewSheet(bs); err != nil {
		return nil, err
	}
	cols := []string{"Batch", "Crop", "Location", "Tons", "Grade", "Stored", "Expires"}
	for i, c := range cols {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(bs, cell, c)
	}
	_ = f.SetCellStyle(bs, "A1", "G1", head)
	for i, it := range items {
		row := i + 2
		set(bs, fmt.Sprintf("A%d", row), it.BatchNo)
		set(bs, fmt.Sprintf("B%d", row), it.CropID)
		set(bs, fmt.Sprintf("C%d", row), it.LocationID)
		set(bs, fmt.Sprintf("D%d", row), it.QuantityTons)
		set(bs, fmt.Sprintf("E%d", row), it.QualityGrade)
		set(bs, fmt.Sprintf("F%d", row), it.DateStored.Format("2006-01-02"))
		set(bs, fmt.Sprintf("G%d", row), it.ExpiryDate.Format("2006-01-02"))
	}
	_ = f.SetColWidth(bs, "A", "A", 38)
	return f, nil
}
