package database

import (
	"fmt"

	"gorm.io/gorm"

	"ajussi_backend/internal/models"
)

// AutoMigrate creates or updates the schema for every model. The unique
// index on reviews.request_id and the composite index on favorites come
// from the model tags, so a second concurrent insert fails at the database
// rather than in application code.
func AutoMigrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("enable uuid-ossp: %w", err)
	}

	err := db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.AjussiProfile{},
		&models.ServiceRequest{},
		&models.Review{},
		&models.Favorite{},
		&models.AjussiApplication{},
	)
	if err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
