// internal/database/seed.go
package database

import (
	"fmt"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/boomapp/boom-backend/internal/models"
)

// SeedCatalog loads a small demo catalog so a fresh development
// environment has something to browse.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}

	if count > 0 {
		return nil
	}

	logrus.Info("Seeding demo catalog...")

	products := []models.Product{
		{
			Name:           "Air Boom 1",
			Brand:          "BoomWear",
			Price:          129.99,
			Image:          "https://cdn.boomapp.dev/products/air-boom-1.png",
			AvailableSizes: pq.StringArray{"40", "41", "42", "43", "44"},
			Tags:           pq.StringArray{"sneakers", "new"},
			Status:         models.ProductStatusActive,
		},
		{
			Name:           "Street Runner",
			Brand:          "BoomWear",
			Price:          89.5,
			Image:          "https://cdn.boomapp.dev/products/street-runner.png",
			AvailableSizes: pq.StringArray{"39", "40", "41", "42"},
			Tags:           pq.StringArray{"sneakers", "running"},
			Status:         models.ProductStatusActive,
		},
		{
			Name:   "City Scarf",
			Brand:  "Urbana",
			Price:  24.99,
			Image:  "https://cdn.boomapp.dev/products/city-scarf.png",
			Tags:   pq.StringArray{"accessories"},
			Status: models.ProductStatusActive,
		},
		{
			Name:           "Night Hoodie",
			Brand:          "Urbana",
			Price:          59.0,
			Image:          "https://cdn.boomapp.dev/products/night-hoodie.png",
			AvailableSizes: pq.StringArray{"S", "M", "L", "XL"},
			Tags:           pq.StringArray{"apparel", "sale"},
			Status:         models.ProductStatusActive,
		},
		{
			Name:   "Boom Cap",
			Brand:  "BoomWear",
			Price:  19.99,
			Image:  "https://cdn.boomapp.dev/products/boom-cap.png",
			Tags:   pq.StringArray{"accessories", "new"},
			Status: models.ProductStatusActive,
		},
	}

	if err := db.Create(&products).Error; err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	logrus.WithField("count", len(products)).Info("Demo catalog seeded")
	return nil
}
