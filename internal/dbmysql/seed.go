package dbmysql

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Kukaas/marketplace/internal/common"
)

// SeedDemoListings inserts a handful of demo listings so the home feed
// has something to show on a fresh database. Listings are keyed by
// title+seller, a rerun does not duplicate them.
func SeedDemoListings(db *gorm.DB) {
	log.Println("🌱 Seeding demo listings...")

	demo := []Listing{
		{Title: "Road bike, barely used", Category: "Vehicles", Price: 150, Location: "Palo Alto, CA", SellerEmail: "demo-seller@example.com", Description: "Commuter bike, new tires."},
		{Title: "Mid-century desk lamp", Category: "Home Goods", Price: 35, Location: "Palo Alto, CA", SellerEmail: "demo-seller@example.com"},
		{Title: "Acoustic guitar", Category: "Musical Instruments", Price: 2300, Location: "Palo Alto, CA", SellerEmail: "demo-seller@example.com", Description: "Solid spruce top."},
		{Title: "Moving boxes, free", Category: "Free Stuff", Price: 0, Location: "Menlo Park, CA", SellerEmail: "demo-seller@example.com"},
		{Title: "Standing desk", Category: "Office Supplies", Price: 220, Location: "Mountain View, CA", SellerEmail: "demo-seller@example.com"},
	}

	for _, listing := range demo {
		if !common.IsValidCategory(listing.Category) {
			log.Printf("Skipping demo listing %q: unknown category %q", listing.Title, listing.Category)
			continue
		}

		var existing Listing
		err := db.Where("title = ? AND seller_email = ?", listing.Title, listing.SellerEmail).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Printf("Failed to check demo listing %q: %v", listing.Title, err)
			continue
		}

		listing.ID = uuid.NewString()
		if err := db.Create(&listing).Error; err != nil {
			log.Printf("Failed to seed listing %q: %v", listing.Title, err)
		} else {
			log.Printf("Listing seeded: %s (%s)", listing.Title, listing.ID)
		}
	}
}
