package database

import (
	"careernode_backend/internal/models"

	"gorm.io/gorm"
)

// RunMigrations applies the schema. Order matters: referenced tables first.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Category{},
		&models.Job{},
		&models.Application{},
	)
}
