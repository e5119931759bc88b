// Package store is the persistence gateway for measures: plain relational
// lookups over GORM, no caching and no cross-call transactions.
package store

import (
	"errors"
	"time"

	"github.com/Kaduh15/api-consumption-measurement/models"
	"gorm.io/gorm"
)

type MeasureStore struct {
	db *gorm.DB
}

func New(db *gorm.DB) *MeasureStore {
	return &MeasureStore{db: db}
}

// FindByID returns (nil, nil) when no measure has the given id.
func (s *MeasureStore) FindByID(id string) (*models.Measure, error) {
	var m models.Measure
	err := s.db.First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindFirstInPeriod is the duplicate-report check: any measure for the
// customer and meter type whose datetime falls inside [start, end].
func (s *MeasureStore) FindFirstInPeriod(customerCode, measureType string, start, end time.Time) (*models.Measure, error) {
	var m models.Measure
	err := s.db.
		Where("customer_code = ? AND measure_type = ?", customerCode, measureType).
		Where("measure_datetime >= ? AND measure_datetime <= ?", start, end).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// List returns the customer's measures, optionally narrowed by meter type
// and by a datetime window. Empty measureType or nil bounds skip the filter.
func (s *MeasureStore) List(customerCode, measureType string, start, end *time.Time) ([]models.Measure, error) {
	query := s.db.Where("customer_code = ?", customerCode)

	if measureType != "" {
		query = query.Where("measure_type = ?", measureType)
	}
	if start != nil && end != nil {
		query = query.Where("measure_datetime >= ? AND measure_datetime <= ?", *start, *end)
	}

	var measures []models.Measure
	if err := query.Order("measure_datetime asc").Find(&measures).Error; err != nil {
		return nil, err
	}
	return measures, nil
}

func (s *MeasureStore) Create(m *models.Measure) error {
	return s.db.Create(m).Error
}

// Confirm flips the measure to its terminal state and stores the corrected
// value. Callers check the current state first; this is a blind update.
func (s *MeasureStore) Confirm(id string, value float64) error {
	return s.db.Model(&models.Measure{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"has_confirmed": true,
			"measure_value": value,
		}).Error
}
