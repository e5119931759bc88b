package database

import (
	"github.com/Kaduh15/api-consumption-measurement/config"
	"github.com/Kaduh15/api-consumption-measurement/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the Postgres connection and runs the schema migration for
// the measure table.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.Measure{}); err != nil {
		return nil, err
	}

	return db, nil
}
