package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/leafload/leafload-api/internal/config"
	"github.com/leafload/leafload-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	if err := SeedRegions(db); err != nil {
		log.Fatalf("failed to seed regions: %v", err)
	}

	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Region{},
		&models.User{},
		&models.Restaurant{},
		&models.Category{},
		&models.MenuItem{},
		&models.Review{},
		&models.Order{},
		&models.OrderItem{},
	)
}

// SeedRegions upserts the static delivery regions by name, so restarts
// never duplicate them.
func SeedRegions(db *gorm.DB) error {
	regions := []string{
		"Klagenfurt Nord",
		"Klagenfurt West",
		"Klagenfurt Ost",
		"Klagenfurt Süd",
	}

	for _, name := range regions {
		region := models.Region{Name: name}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&region).Error; err != nil {
			return err
		}
	}

	return nil
}
