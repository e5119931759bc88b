package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MeasureTypeWater = "WATER"
	MeasureTypeGas   = "GAS"
)

// Measure is one submitted meter reading, from upload through optional
// confirmation. Rows are never deleted by this service.
type Measure struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	CustomerCode    string    `gorm:"index" json:"customer_code"`
	MeasureType     string    `json:"measure_type"`
	MeasureDatetime time.Time `json:"measure_datetime"`
	MeasureValue    float64   `json:"measure_value"`
	ImageBase64     string    `json:"-"`
	HasConfirmed    bool      `json:"has_confirmed"`
	CreatedAt       time.Time `json:"created_at"`
}

func (m *Measure) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
