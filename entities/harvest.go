package entities

import "time"

// Quality grades for a harvest batch, best to worst.
const (
	GradeA = "A"
	GradeB = "B"
	GradeC = "C"
	GradeD = "D"
)

type HarvestRecord struct {
	RecordID     uint      `gorm:"primaryKey" json:"record_id"`
	FieldID      uint      `gorm:"index" json:"field_id"`
	HarvestDate  time.Time `gorm:"index" json:"harvest_date"`
	QuantityTons float64   `json:"quantity_tons"`
	QualityGrade string    `json:"quality_grade"` // A|B|C|D
	HarvestedBy  uint      `json:"harvested_by"`
	Notes        string    `json:"notes"`

	CreatedAt time.Time
}

func ValidGrade(g string) bool {
	switch g {
	case GradeA, GradeB, GradeC, GradeD:
		return true
	}
	return false
}
