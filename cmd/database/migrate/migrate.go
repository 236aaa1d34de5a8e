package migration

import (
	"fmt"
	"log"

	"cookops-backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.Site{}); err != nil {
		log.Fatalf("Error migrating site database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.MenuEntry{}); err != nil {
		log.Fatalf("Error migrating menu entry database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeSnapshot{}); err != nil {
		log.Fatalf("Error migrating recipe snapshot database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Supplier{}); err != nil {
		log.Fatalf("Error migrating supplier database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.SupplierProduct{}); err != nil {
		log.Fatalf("Error migrating supplier product database: %v", err)
		return err
	}

	if err := SeedDefaultSites(db); err != nil {
		log.Fatalf("Error seeding default sites: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}

// SeedDefaultSites creates the initial sites when they are missing. Existing
// rows are left alone.
func SeedDefaultSites(db *gorm.DB) error {
	defaults := []entities.Site{
		{Name: "Le Jardin des Pins", Code: "LE_JARDIN_DES_PINS", IsActive: true},
		{Name: "La Paillotte Sucrée", Code: "LA_PAILLOTTE_SUCREE", IsActive: true},
	}
	for _, site := range defaults {
		var count int64
		if err := db.Model(&entities.Site{}).Where("code = ?", site.Code).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&site).Error; err != nil {
			return err
		}
	}
	return nil
}
